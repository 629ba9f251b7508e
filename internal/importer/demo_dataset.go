package importer

// demoDataset — встроенный набор данных для локального запуска отчёта без
// внешнего файла. Проходит тот же путь импорта, что и пользовательские файлы.
const demoDataset = `{
  "customers": [
    {"id": 892474, "name": "Eric Meyer", "contacts": ["eric98@yahoo.com", "(030) 3945-642298"]},
    {"id": 643270, "name": "Bayer, Anne", "contacts": ["anne24@yahoo.de", "(023) 3456-94235"]},
    {"id": 286516, "name": "Tim Schulz-Mueller", "contacts": ["tim2346@gmx.de"]},
    {"id": 412396, "name": "Nadine Ulla Blumenfeld", "contacts": ["+49 152-92454"]}
  ],
  "articles": [
    {"id": "SKU-638035", "description": "Teller", "unit_price": 649, "tax": "reduced_vat"},
    {"id": "SKU-458362", "description": "Tasse", "unit_price": 299, "tax": "reduced_vat"},
    {"id": "SKU-693856", "description": "Becher", "unit_price": 149},
    {"id": "SKU-278530", "description": "Kanne", "unit_price": 1999},
    {"id": "SKU-518957", "description": "Kaffeemaschine", "unit_price": 24999}
  ],
  "orders": [
    {"id": "8592356245", "customer_id": 892474, "created_at": "2020-02-14T10:23:00Z",
     "items": [{"article_id": "SKU-638035", "units": 4}, {"article_id": "SKU-458362", "units": 4}]},
    {"id": "3563561357", "customer_id": 643270, "created_at": "2020-03-02T16:10:00Z",
     "items": [{"article_id": "SKU-693856", "units": 2}, {"article_id": "SKU-278530", "units": 1}]},
    {"id": "5234968294", "customer_id": 892474, "created_at": "2020-03-05T09:45:00Z",
     "items": [{"article_id": "SKU-518957", "units": 1}]},
    {"id": "6135735635", "customer_id": 412396, "created_at": "2020-03-12T12:30:00Z",
     "items": [{"article_id": "SKU-638035", "units": 12}, {"article_id": "SKU-693856", "units": 3}, {"article_id": "SKU-458362", "units": 3}]}
  ]
}`
