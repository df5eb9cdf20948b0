package models

// StudentType classifies how a student entered the school. Fee assignment
// rules and requirement applicability both key off this value.
type StudentType string

const (
	NewEnrollee StudentType = "new"
	Transferee  StudentType = "transferee"
	Returnee    StudentType = "returnee"
)

// FeeScope defines how a fee item is applied to students.
type FeeScope string

const (
	ScopeAll    FeeScope = "all"    // applies to every student
	ScopeScoped FeeScope = "scoped" // applies through assignment rules
)

// GrantStatus defines the status of a grant award.
type GrantStatus string

const (
	GrantActive   GrantStatus = "active"
	GrantInactive GrantStatus = "inactive"
	GrantRevoked  GrantStatus = "revoked"
)

// TransactionStatus defines the status of an online payment submission.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionVerified TransactionStatus = "verified"
	TransactionFailed   TransactionStatus = "failed"
	TransactionRefunded TransactionStatus = "refunded"
)

// PromissoryStatus defines the status of a promissory note request.
type PromissoryStatus string

const (
	PromissoryPending  PromissoryStatus = "pending"
	PromissoryApproved PromissoryStatus = "approved"
	PromissoryDeclined PromissoryStatus = "declined"
)

// RequirementStatus defines the status of a student's requirement record.
type RequirementStatus string

const (
	RequirementPending   RequirementStatus = "pending"
	RequirementSubmitted RequirementStatus = "submitted"
	RequirementApproved  RequirementStatus = "approved"
	RequirementRejected  RequirementStatus = "rejected"
	RequirementOverdue   RequirementStatus = "overdue"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// RelationshipType defines the relationship of a parent/guardian to a student.
type RelationshipType string

const (
	Father   RelationshipType = "father"
	Mother   RelationshipType = "mother"
	Guardian RelationshipType = "guardian"
	OtherRel RelationshipType = "other"
)

// AnnouncementAudience defines who an announcement is visible to.
type AnnouncementAudience string

const (
	AudienceAll      AnnouncementAudience = "all"
	AudienceStudents AnnouncementAudience = "students"
	AudienceParents  AnnouncementAudience = "parents"
	AudienceStaff    AnnouncementAudience = "staff"
)
