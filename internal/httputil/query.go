package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

// GetURLFields checks which query parameters are set and which of them can
// be used directly in a gorm Where statement.
//
// queryFields contains all field names that can be passed to gorm's Where
// as the fields to filter on. gorm takes them as []any, so the type is not
// []string.
//
// setFields contains all field names set in the query parameters,
// including meta fields like "limit" that are handled outside of gorm.
// This allows filtering for zero values without declaring pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	fields(filter, "form", func(name, param string) {
		// filterField="false" marks meta fields that are processed by
		// explicit logic in the controllers instead of a gorm Where
		if !url.Query().Has(param) {
			return
		}

		setFields = append(setFields, name)

		if !strings.Contains(param, ",") && filterField(filter, name) {
			queryFields = append(queryFields, name)
		}
	})

	return queryFields, setFields
}

// fields calls fn for every struct field with its name and tag value.
func fields(resource any, tag string, fn func(name, param string)) {
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := strings.SplitN(val.Type().Field(i).Tag.Get(tag), ",", 2)[0]

		fn(field, param)
	}
}

func filterField(resource any, name string) bool {
	val := reflect.Indirect(reflect.ValueOf(resource))
	field, ok := val.Type().FieldByName(name)
	if !ok {
		return false
	}

	return field.Tag.Get("filterField") != "false"
}
