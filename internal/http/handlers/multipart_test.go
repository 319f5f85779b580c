package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFormCapsFieldCount(t *testing.T) {
	e := newEnv(t)
	fields := tryOnFields()
	for i := len(fields); i <= maxFields; i++ {
		fields[fmt.Sprintf("extra_%d", i)] = "x"
	}
	require.Greater(t, len(fields), maxFields)

	rr := e.do(multipartRequest(t, "/api/try-on", fields,
		filePart{field: "place_image", filename: "room.jpg", contentType: "image/jpeg", data: jpegBytes},
	))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, fmt.Sprintf("At most %d form fields are accepted", maxFields), decode(t, rr)["detail"])
	assert.Nil(t, e.pipeline.tryOnReq.Scene.Data)
}

func TestReadFormAcceptsFieldsAtCap(t *testing.T) {
	e := newEnv(t)
	fields := tryOnFields()
	for i := len(fields); i < maxFields; i++ {
		fields[fmt.Sprintf("extra_%d", i)] = "x"
	}
	require.Len(t, fields, maxFields)

	rr := e.do(multipartRequest(t, "/api/try-on", fields,
		filePart{field: "place_image", filename: "room.jpg", contentType: "image/jpeg", data: jpegBytes},
	))
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestReadFormBoundsTotalBody(t *testing.T) {
	prev := maxBodyBytes
	maxBodyBytes = 4 << 10
	t.Cleanup(func() { maxBodyBytes = prev })

	e := newEnv(t)
	big := bytes.Repeat([]byte{0xff}, 8<<10)
	rr := e.do(multipartRequest(t, "/api/furniture-placement", map[string]string{"room_design_id": "d-1"},
		filePart{field: "furniture_images", filename: "a.png", contentType: "image/png", data: big},
	))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Request body too large", decode(t, rr)["detail"])
	assert.Empty(t, e.pipeline.placeReq.Furniture)
}
