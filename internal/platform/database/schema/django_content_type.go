package schema

// DjangoContentTypeTable represents the 'django_content_type' table — the
// upstream CMS's registry mapping an (app_label, model) pair to the numeric
// content-type id used by the audit log.
type DjangoContentTypeTable struct {
	Table    string
	ID       string
	AppLabel string
	Model    string
}

// DjangoContentType is the schema definition for django_content_type
var DjangoContentType = DjangoContentTypeTable{
	Table:    "django_content_type",
	ID:       "id",
	AppLabel: "app_label",
	Model:    "model",
}
