package types

// Schema is the root persisted record. Every read of the store yields a value
// of this shape with every field populated, even when the underlying payload
// was written by an older version that lacked some of the fields.
type Schema struct {
	Profile         UserProfile        `json:"profile"`
	GaitProfile     GaitProfile        `json:"gaitProfile"`
	Rotation        []ShoeRotationItem `json:"rotation"`
	Cart            []CartItem         `json:"cart"`
	RSVPedEvents    []string           `json:"rsvpedEvents"`
	PrivacyAudit    PrivacyAudit       `json:"privacyAudit"`
	IsAuthenticated bool               `json:"isAuthenticated"`
}

// DefaultSchema returns a virgin record. It is deliberately a constructor and
// not a shared package-level value: a shared value mutated by one session
// would leak into the next one after a wipe (the zombie state hazard).
func DefaultSchema() Schema {
	return Schema{
		Profile: UserProfile{
			Name:            "",
			Email:           "",
			IsGuest:         false,
			AttendanceCount: 0,
			MilesRun:        0,
		},
		GaitProfile:  GaitProfile{},
		Rotation:     []ShoeRotationItem{},
		Cart:         []CartItem{},
		RSVPedEvents: []string{},
		PrivacyAudit: PrivacyAudit{
			LastWipe:    nil,
			StorageUsed: "0KB",
		},
		IsAuthenticated: false,
	}
}
