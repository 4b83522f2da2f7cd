package models

// Setting maps the settings table. setting_key is the primary key.
type Setting struct {
	Key   string `db:"setting_key"`
	Value string `db:"setting_value"`
	AuditFields
}
