package core

import "time"

// UserProfile is one survey document per participant. idName is the unique
// key; every other field is optional free text supplied by the participant.
type UserProfile struct {
	IDName              string `json:"idName" bson:"idName" binding:"required"`
	Email               string `json:"email,omitempty" bson:"email,omitempty"`
	Age                 string `json:"age,omitempty" bson:"age,omitempty"`
	GenderIdentity      string `json:"genderIdentity,omitempty" bson:"genderIdentity,omitempty"`
	Diagnosis           string `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	DiagnosisConfidence string `json:"diagnosisConfidence,omitempty" bson:"diagnosisConfidence,omitempty"`
	Symptoms            string `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	Behaviors           string `json:"behaviors,omitempty" bson:"behaviors,omitempty"`
	Region              string `json:"region,omitempty" bson:"region,omitempty"`
	Country             string `json:"country,omitempty" bson:"country,omitempty"`
}

// ProfileUpdate carries the rename fields for an update. Nil means "leave as
// is"; at least one field must be set.
type ProfileUpdate struct {
	IDName *string `json:"newIdName"`
	Email  *string `json:"newEmail"`
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}
