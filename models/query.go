package models

// QueryConfig describes a single-key DynamoDB lookup. Every table and index
// in the scheduling schema is keyed on a string id, so the key value is
// always a string. Leave IndexName empty to hit the table's primary key.
type QueryConfig struct {
	TableName string
	IndexName string
	KeyName   string
	KeyValue  string
}
