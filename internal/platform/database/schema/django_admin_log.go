package schema

// DjangoAdminLogTable represents the 'django_admin_log' table — the
// append-only change audit written by the upstream CMS. ObjectID is stored
// as text regardless of the referenced entity's key type.
type DjangoAdminLogTable struct {
	Table         string
	ID            string
	ActionTime    string
	UserID        string
	ContentTypeID string
	ObjectID      string
	ObjectRepr    string
	ActionFlag    string
	ChangeMessage string
}

// DjangoAdminLog is the schema definition for django_admin_log
var DjangoAdminLog = DjangoAdminLogTable{
	Table:         "django_admin_log",
	ID:            "id",
	ActionTime:    "action_time",
	UserID:        "user_id",
	ContentTypeID: "content_type_id",
	ObjectID:      "object_id",
	ObjectRepr:    "object_repr",
	ActionFlag:    "action_flag",
	ChangeMessage: "change_message",
}
