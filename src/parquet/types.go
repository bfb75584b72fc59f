package parquet

// LookupRow is one attribute of one lookup result. List attributes produce one
// row per element, numbered by Ordinal in source order.
type LookupRow struct {
	QueryId   string `parquet:"name=query_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Mode      string `parquet:"name=mode, type=BYTE_ARRAY, convertedtype=UTF8"`
	Subject   string `parquet:"name=subject, type=BYTE_ARRAY, convertedtype=UTF8"`
	Attribute string `parquet:"name=attribute, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ordinal   int32  `parquet:"name=ordinal, type=INT32"`
	Value     string `parquet:"name=value, type=BYTE_ARRAY, convertedtype=UTF8"`
}
