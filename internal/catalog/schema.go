package catalog

// catalogSchema описывает форму catalog.json; уникальность id проверяется кодом
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["books", "authors", "genres"],
  "properties": {
    "books": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "author"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "author": {"type": "string"},
          "genres": {"type": "array", "items": {"type": "string"}},
          "description": {"type": "string"},
          "image": {"type": "string"},
          "published": {"type": "string"}
        }
      }
    },
    "authors": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "genres": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`
