package sqlinline

const QInsertFurnitureItem = `--sql 5104f4b5-e3a8-4087-8a97-3fe5757f1c6b
insert into furniture_items(name, category, image_url)
values ($1::text, $2::text, $3::text)
returning id::text, name, category, image_url, user_id::text, created_at;
`

const QListFurnitureItems = `--sql 5cb8f949-f3c0-4637-b1c8-2cfb5603877a
select id::text, name, category, image_url, user_id::text, created_at
from furniture_items
where ($1::text = '' or category = $1::text)
order by created_at desc;
`

const QSelectFurnitureItemByID = `--sql 5d51b85a-8e02-43d2-9cb2-e5de2e5d3ac5
select id::text, name, category, image_url, user_id::text, created_at
from furniture_items
where id = $1::uuid
limit 1;
`

const QListFurnitureItemsByIDs = `--sql 2c9848aa-537e-44d5-9898-d0cba0c9e2d0
select id::text, name, category, image_url, user_id::text, created_at
from furniture_items
where id = any($1::uuid[]);
`

const QDeleteFurnitureItem = `--sql b2f336d0-7c96-46e2-83e9-c29ceb21a8ae
delete from furniture_items
where id = $1::uuid;
`
