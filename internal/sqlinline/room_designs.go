package sqlinline

const QInsertRoomDesign = `--sql e6053851-2a55-40ed-a2e9-d8bfc7086a99
insert into room_designs(
  original_image_url,
  generated_image_url,
  design_type,
  room_type,
  style,
  background_color,
  foreground_color,
  instructions,
  description
) values (
  $1::text,
  $2::text,
  $3::text,
  $4::text,
  $5::text,
  $6::text,
  $7::text,
  $8::text,
  $9::text
) returning
  id::text,
  original_image_url,
  generated_image_url,
  design_type,
  room_type,
  style,
  background_color,
  foreground_color,
  instructions,
  description,
  created_at;
`

const QListRoomDesigns = `--sql 6afb16dc-d962-474b-8ca1-c5e9d6a9d5df
select
  id::text,
  original_image_url,
  generated_image_url,
  design_type,
  room_type,
  style,
  background_color,
  foreground_color,
  instructions,
  description,
  created_at
from room_designs
order by created_at desc
limit $1::int;
`

const QSelectRoomDesignByID = `--sql 4c9798a9-97ef-414e-a7c2-f310dd1edf3c
select
  id::text,
  original_image_url,
  generated_image_url,
  design_type,
  room_type,
  style,
  background_color,
  foreground_color,
  instructions,
  description,
  created_at
from room_designs
where id = $1::uuid
limit 1;
`

const QDeleteRoomDesign = `--sql 2c3a94cd-8878-419e-b514-93ec45bf0265
delete from room_designs
where id = $1::uuid;
`
