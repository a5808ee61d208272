package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleBusiness UserRole = "business"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleBusiness, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// BusinessStatus represents the lifecycle state of a business profile.
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusSuspended BusinessStatus = "suspended"
	BusinessStatusClosed    BusinessStatus = "closed"
)

func (s BusinessStatus) String() string { return string(s) }

func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusActive, BusinessStatusSuspended, BusinessStatusClosed:
		return true
	}
	return false
}

// PostType classifies business posts.
type PostType string

const (
	PostTypeUpdate       PostType = "update"
	PostTypePromotion    PostType = "promotion"
	PostTypeEvent        PostType = "event"
	PostTypeProduct      PostType = "product"
	PostTypeAnnouncement PostType = "announcement"
)

func (t PostType) String() string { return string(t) }

func (t PostType) IsValid() bool {
	switch t {
	case PostTypeUpdate, PostTypePromotion, PostTypeEvent, PostTypeProduct, PostTypeAnnouncement:
		return true
	}
	return false
}

// ChatType distinguishes user-to-business conversations from direct chats.
type ChatType string

const (
	ChatTypeUserBusiness ChatType = "user_business"
	ChatTypeUserUser     ChatType = "user_user"
)

func (t ChatType) String() string { return string(t) }

func (t ChatType) IsValid() bool {
	switch t {
	case ChatTypeUserBusiness, ChatTypeUserUser:
		return true
	}
	return false
}

// MessageType classifies chat messages.
type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeImage  MessageType = "image"
	MessageTypeFile   MessageType = "file"
	MessageTypeSystem MessageType = "system"
)

func (t MessageType) String() string { return string(t) }

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeFile, MessageTypeSystem:
		return true
	}
	return false
}

// NotificationType classifies notification records.
type NotificationType string

const (
	NotificationTypeLike      NotificationType = "like"
	NotificationTypeComment   NotificationType = "comment"
	NotificationTypeFollow    NotificationType = "follow"
	NotificationTypeMessage   NotificationType = "message"
	NotificationTypePost      NotificationType = "post"
	NotificationTypeSystem    NotificationType = "system"
	NotificationTypePromotion NotificationType = "promotion"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeLike, NotificationTypeComment, NotificationTypeFollow,
		NotificationTypeMessage, NotificationTypePost, NotificationTypeSystem,
		NotificationTypePromotion:
		return true
	}
	return false
}

// ReportType classifies content reports.
type ReportType string

const (
	ReportTypeSpam          ReportType = "spam"
	ReportTypeInappropriate ReportType = "inappropriate"
	ReportTypeHarassment    ReportType = "harassment"
	ReportTypeFake          ReportType = "fake"
	ReportTypeCopyright     ReportType = "copyright"
	ReportTypeOther         ReportType = "other"
)

func (t ReportType) String() string { return string(t) }

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeSpam, ReportTypeInappropriate, ReportTypeHarassment,
		ReportTypeFake, ReportTypeCopyright, ReportTypeOther:
		return true
	}
	return false
}

// ReportStatus represents the review lifecycle of a reported content item.
// Pending is the only non-terminal state.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusReviewed || s == ReportStatusResolved || s == ReportStatusDismissed
}
