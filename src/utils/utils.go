package utils

import (
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	var result []reflect.StructField
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue splits `name=x, type=INT32` into a map. Entries
// without a value map to "".
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return result
}
