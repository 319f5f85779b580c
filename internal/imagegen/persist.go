package imagegen

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roomdesign/internal/domain"
	"roomdesign/internal/providers/gemini"
	"roomdesign/internal/storage"
)

const (
	StepStoreOriginal  = "store_original"
	StepStoreGenerated = "store_generated"
	StepInsertDesign   = "insert_design"

	DefaultStorageTimeout = 30 * time.Second
)

var extPattern = regexp.MustCompile(`^[a-z0-9]{1,5}$`)

// StepStatus is the result of one persistence step.
type StepStatus int

const (
	StepSucceeded StepStatus = iota
	StepSkipped
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepSucceeded:
		return "succeeded"
	case StepSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// StepOutcome records what happened in one step. Err is set only on StepFailed.
type StepOutcome struct {
	Step   string
	Status StepStatus
	Err    error
}

// PersistInput carries everything written for one generated design.
type PersistInput struct {
	Params      domain.DesignParams
	Original    Upload
	Generated   gemini.Image
	Description string
}

// PersistResult holds whatever was obtained. Nil fields mean the step failed
// or was skipped; Steps lists every step in order.
type PersistResult struct {
	OriginalURL  *string
	GeneratedURL *string
	DesignID     *string
	Steps        []StepOutcome
}

// Persister stores the original and generated images and records the design.
// No step aborts the request: failures are logged and reported in Steps.
type Persister struct {
	store   storage.ObjectStore
	designs DesignStore
	bucket  string
	timeout time.Duration
	logger  zerolog.Logger
	newID   func() string
}

func NewPersister(store storage.ObjectStore, designs DesignStore, bucket string, timeout time.Duration, logger zerolog.Logger) *Persister {
	if timeout <= 0 {
		timeout = DefaultStorageTimeout
	}
	return &Persister{
		store:   store,
		designs: designs,
		bucket:  bucket,
		timeout: timeout,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

func (p *Persister) Persist(ctx context.Context, in PersistInput) PersistResult {
	var res PersistResult

	originalKey := fmt.Sprintf("room-designs/originals/original_%s.%s", p.newID(), FileExtension(in.Original))
	url, outcome := p.put(ctx, StepStoreOriginal, originalKey, in.Original.Data, in.Original.ContentType)
	res.OriginalURL = url
	res.Steps = append(res.Steps, outcome)

	generatedKey := fmt.Sprintf("room-designs/generated/generated_%s.%s", p.newID(), storage.ExtensionFor(in.Generated.MIME))
	url, outcome = p.put(ctx, StepStoreGenerated, generatedKey, in.Generated.Data, in.Generated.MIME)
	res.GeneratedURL = url
	res.Steps = append(res.Steps, outcome)

	if res.OriginalURL == nil || res.GeneratedURL == nil {
		res.Steps = append(res.Steps, StepOutcome{Step: StepInsertDesign, Status: StepSkipped})
		p.logger.Warn().Msg("room design not recorded: image storage incomplete")
		return res
	}

	design, err := p.designs.Create(ctx, domain.NewRoomDesign{
		DesignParams:      in.Params,
		OriginalImageURL:  *res.OriginalURL,
		GeneratedImageURL: *res.GeneratedURL,
		Description:       in.Description,
	})
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		p.logger.Error().Err(err).Str("step", StepInsertDesign).Msg("room design insert failed")
		res.Steps = append(res.Steps, StepOutcome{Step: StepInsertDesign, Status: StepFailed, Err: err})
		return res
	}
	res.DesignID = &design.ID
	res.Steps = append(res.Steps, StepOutcome{Step: StepInsertDesign, Status: StepSucceeded})
	return res
}

func (p *Persister) put(ctx context.Context, step, key string, data []byte, contentType string) (*string, StepOutcome) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.store.Put(ctx, p.bucket, key, data, contentType); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
		p.logger.Error().Err(err).Str("step", step).Str("key", key).Msg("image upload failed")
		return nil, StepOutcome{Step: step, Status: StepFailed, Err: err}
	}
	url := p.store.PublicURL(p.bucket, key)
	return &url, StepOutcome{Step: step, Status: StepSucceeded}
}

// FileExtension returns the upload's own extension, else one derived from its
// content type, else "jpg".
func FileExtension(u Upload) string {
	if ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Filename), ".")); extPattern.MatchString(ext) {
		return ext
	}
	if ext := storage.ExtensionFor(u.ContentType); ext != "bin" {
		return ext
	}
	return "jpg"
}
