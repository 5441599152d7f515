// internal/defaults/schema.go
package defaults

// profileSchema describes the minimum shape a fetched profile document
// must have before it is trusted.
const profileSchema = `{
  "type": "object",
  "required": ["basicInfo", "skills"],
  "properties": {
    "basicInfo": {
      "type": "object",
      "required": ["name", "email"],
      "properties": {
        "name":  {"type": "string"},
        "email": {"type": "string"}
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "technical": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name", "level"],
            "properties": {
              "name":  {"type": "string"},
              "level": {"type": "integer", "minimum": 0, "maximum": 100}
            }
          }
        },
        "soft": {"type": "array", "items": {"type": "string"}}
      }
    },
    "experience": {"type": "array"},
    "education":  {"type": "array"}
  }
}`

// catalogSchema describes the static jobs document: browse categories
// plus a flat job list.
const catalogSchema = `{
  "type": "object",
  "required": ["categories", "jobs"],
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id":   {"type": "string"},
          "name": {"type": "string"}
        }
      }
    },
    "jobs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "company"],
        "properties": {
          "id":      {"type": "string"},
          "title":   {"type": "string"},
          "company": {"type": "string"}
        }
      }
    }
  }
}`
