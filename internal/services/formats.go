package services

// ISOFormat selects full ISO-8601 output with milliseconds and a Z designator.
const ISOFormat = "ISO"

// Caller-facing date format tokens and the templates they stand for.
// Templates use the token set understood by renderTemplate.
var dateFormatTemplates = map[string]string{
	ISOFormat: ISOFormat,

	"YYYY-MM-DD": "yyyy-MM-dd",
	"YYYY/MM/DD": "yyyy/MM/dd",
	"DD-MM-YYYY": "dd-MM-yyyy",
	"DD/MM/YYYY": "dd/MM/yyyy",
	"MM-DD-YYYY": "MM-dd-yyyy",
	"MM/DD/YYYY": "MM/dd/yyyy",

	"YYYY-MM-DD HH:mm:ss":  "yyyy-MM-dd HH:mm:ss",
	"YYYY-MM-DDTHH:mm:ss":  "yyyy-MM-dd'T'HH:mm:ss",
	"YYYY-MM-DDTHH:mm:ssZ": "yyyy-MM-dd'T'HH:mm:ss'Z'",

	// strftime aliases
	"%Y-%m-%d":          "yyyy-MM-dd",
	"%d/%m/%Y":          "dd/MM/yyyy",
	"%m/%d/%Y":          "MM/dd/yyyy",
	"%Y-%m-%d %H:%M:%S": "yyyy-MM-dd HH:mm:ss",
}

// MapDateFormat returns the template for a format token. Unknown tokens
// are returned unchanged and rendered as templates on a best-effort basis.
func MapDateFormat(format string) string {
	if format == "" {
		return ISOFormat
	}
	if tpl, ok := dateFormatTemplates[format]; ok {
		return tpl
	}
	return format
}
