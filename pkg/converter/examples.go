package converter

import "tostruct/pkg/schemas"

// Example returns a canned sample input for the given format, empty string
// for unknown kinds. Callers use these as editor templates.
func Example(format schemas.Format) string {
	return examples[format]
}

var examples = map[schemas.Format]string{
	schemas.FormatJSON: `{
  "id": 1,
  "name": "alice",
  "score": 99.5,
  "active": true,
  "tags": ["admin", "staff"],
  "address": {
    "city": "Berlin",
    "zip": "10115"
  }
}`,
	schemas.FormatYAML: `id: 1
name: alice
joined: 2023-04-01T09:30:00Z
roles:
  - admin
  - staff
profile:
  city: Berlin
  verified: true
`,
	schemas.FormatSQL: "CREATE TABLE `user` (\n" +
		"  `id` INT UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"  `name` VARCHAR(64) NOT NULL DEFAULT '' COMMENT 'display name',\n" +
		"  `level` ENUM('basic','pro') NOT NULL DEFAULT 'basic',\n" +
		"  `score` DOUBLE,\n" +
		"  `meta` JSON,\n" +
		"  `created_at` DATETIME NOT NULL,\n" +
		"  PRIMARY KEY (`id`)\n" +
		");",
	schemas.FormatProto: `syntax = "proto3";
package demo;

message User {
  int64 id = 1;
  string name = 2;
  repeated string tags = 3;
  bool active = 4;
  google.protobuf.Timestamp created_at = 5;
}`,
	schemas.FormatXML: `<?xml version="1.0" encoding="UTF-8"?>
<user>
  <id>1</id>
  <name>alice</name>
  <score>99.5</score>
  <tag>admin</tag>
  <tag>staff</tag>
</user>`,
	schemas.FormatCSV: `id,name,score,active,created_at
1,alice,99.5,true,2023-04-01
`,
}
