// Package types provides shared domain types used across secondsole packages.
// This package exists to break import cycles between store, profile, and shop.
// Types in this package should be foundational data structures with no complex dependencies.
package types

import "time"

// =============================================================================
// CATALOG TYPES
// =============================================================================

// Category is the surface a shoe is built for.
type Category string

const (
	CategoryRoad   Category = "Road"
	CategoryTrail  Category = "Trail"
	CategoryTrack  Category = "Track"
	CategoryHybrid Category = "Hybrid"
)

// Support is the stability profile of a shoe.
type Support string

const (
	SupportNeutral   Support = "Neutral"
	SupportStability Support = "Stability"
)

// Cushion is the midsole feel of a shoe.
type Cushion string

const (
	CushionFirm     Cushion = "Firm"
	CushionBalanced Cushion = "Balanced"
	CushionPlush    Cushion = "Plush"
)

// Gender is the build a shoe is offered in. Unisex passes any gender filter.
type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

// Shoe is a single catalog entry. The catalog is seeded at build time and
// never mutated; ID is globally unique and stable for the life of the catalog,
// and is used as a foreign key by cart lines and rotation items.
type Shoe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Support     Support  `json:"support"`
	Cushion     Cushion  `json:"cushion"`
	Drop        float64  `json:"drop"`   // heel-to-toe drop in mm
	Weight      float64  `json:"weight"` // ounces, men's size 9
	Gender      Gender   `json:"gender"`
	IsStaffPick bool     `json:"isStaffPick"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

// =============================================================================
// GAIT PROFILE
// =============================================================================

// Single-choice gait answers. The zero value "" means the question has not
// been answered yet, which is distinct from any explicit answer (including
// "no preference" style values such as PronationNeutral).

type Terrain string

const (
	TerrainRoad   Terrain = "Road"
	TerrainTrail  Terrain = "Trail"
	TerrainHybrid Terrain = "Hybrid"
)

type ExperienceLevel string

const (
	ExperienceBeginner ExperienceLevel = "Beginner"
	ExperienceCasual   ExperienceLevel = "Casual"
	ExperienceAdvanced ExperienceLevel = "Advanced"
	ExperienceElite    ExperienceLevel = "Elite"
)

type Strike string

const (
	StrikeHeel     Strike = "Heel"
	StrikeMidfoot  Strike = "Midfoot"
	StrikeForefoot Strike = "Forefoot"
)

type Arch string

const (
	ArchLow    Arch = "Low"
	ArchMedium Arch = "Medium"
	ArchHigh   Arch = "High"
)

type Pronation string

const (
	PronationNeutral Pronation = "Neutral"
	PronationOver    Pronation = "Over"
	PronationUnder   Pronation = "Under"
)

type WeeklyMiles string

const (
	WeeklyMilesLow    WeeklyMiles = "Low"
	WeeklyMilesMedium WeeklyMiles = "Medium"
	WeeklyMilesHigh   WeeklyMiles = "High"
)

type DistanceGoals string

const (
	GoalSpeed DistanceGoals = "Speed"
	GoalDaily DistanceGoals = "Daily"
	GoalLong  DistanceGoals = "Long"
	GoalUltra DistanceGoals = "Ultra"
)

type DropPref string

const (
	DropZero   DropPref = "Zero"
	DropLow    DropPref = "Low"
	DropMedium DropPref = "Medium"
	DropHigh   DropPref = "High"
)

type FootShape string

const (
	FootStandard FootShape = "Standard"
	FootWide     FootShape = "Wide"
)

// GaitProfile is the sparse record of quiz answers. Every field is optional;
// a zero value means the runner has not answered that question and the scorer
// must treat it as contributing nothing.
type GaitProfile struct {
	Terrain         Terrain         `json:"terrain,omitempty"`
	Gender          Gender          `json:"gender,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	Strike          Strike          `json:"strike,omitempty"`
	Arch            Arch            `json:"arch,omitempty"`
	Pronation       Pronation       `json:"pronation,omitempty"`
	WeeklyMiles     WeeklyMiles     `json:"weeklyMiles,omitempty"`
	DistanceGoals   DistanceGoals   `json:"distanceGoals,omitempty"`
	CushionPref     Cushion         `json:"cushionPref,omitempty"`
	DropPref        DropPref        `json:"dropPref,omitempty"`
	FootShape       FootShape       `json:"footShape,omitempty"`
	InjuryHistory   InjurySet       `json:"injuryHistory,omitempty"`
}

// =============================================================================
// USER STATE
// =============================================================================

// UserProfile is the local account record. IsGuest gates gait analysis and
// rotation tracking.
type UserProfile struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	IsGuest         bool    `json:"isGuest"`
	AttendanceCount int     `json:"attendanceCount"`
	MilesRun        float64 `json:"milesRun"`
}

// RotationRefCustom marks a rotation item that does not reference the catalog.
const RotationRefCustom = "custom"

// ShoeRotationItem is one tracked shoe. ID is the per-add instance id, not the
// catalog id; ShoeID is either a catalog id or RotationRefCustom. Miles only
// ever grows (logging adds positive deltas, removal does not retract history).
type ShoeRotationItem struct {
	ID        string  `json:"id"`
	ShoeID    string  `json:"shoeId"`
	Name      string  `json:"name"`
	Miles     float64 `json:"miles"`
	Threshold float64 `json:"threshold"`
	Image     string  `json:"image,omitempty"`
}

// CartItem is one cart line. (ShoeID, Size) is the uniqueness key: adding the
// same key again increments Quantity instead of appending a second line.
type CartItem struct {
	ShoeID   string  `json:"shoeId"`
	Size     float64 `json:"size"`
	Quantity int     `json:"quantity"`
}

// PrivacyAudit summarizes what the local record holds. StorageUsed is derived
// and recomputed on every write; a stale value is never trusted.
type PrivacyAudit struct {
	LastWipe    *time.Time `json:"lastWipe"`
	StorageUsed string     `json:"storageUsed"`
}

// =============================================================================
// COMMUNITY TYPES
// =============================================================================

// Event is a group run or social event hosted by the store.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Day      string `json:"day"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// Trail is a nearby running route.
type Trail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Distance string `json:"distance"`
}
