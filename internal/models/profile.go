package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Region string

const (
	RegionSeoul       Region = "서울"
	RegionGyeonggi    Region = "경기"
	RegionIncheon     Region = "인천"
	RegionGangwon     Region = "강원"
	RegionChungcheong Region = "충청"
	RegionJeolla      Region = "전라"
	RegionGyeongsang  Region = "경상"
	RegionJeju        Region = "제주"
	RegionOverseas    Region = "해외"
)

// Regions is the closed set of selectable regions, in display order.
var Regions = []Region{
	RegionSeoul, RegionGyeonggi, RegionIncheon, RegionGangwon,
	RegionChungcheong, RegionJeolla, RegionGyeongsang, RegionJeju,
	RegionOverseas,
}

// IsValidRegion reports whether r is one of the nine known regions.
func IsValidRegion(r Region) bool {
	for _, known := range Regions {
		if known == r {
			return true
		}
	}
	return false
}

// UserProfile is the single local account record. There is exactly one per
// installation; it is created at signup, edited in place, and never deleted.
//
// The password is stored as entered. Login is a plaintext comparison against
// this record and is not an authentication system; it must not be extended to
// any multi-user trust boundary in this form.
type UserProfile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Password    string    `json:"password"`
	Name        string    `json:"name"`
	Age         string    `json:"age"`
	Affiliation string    `json:"affiliation"`
	PhoneNumber string    `json:"phoneNumber"`
	Gender      Gender    `json:"gender"`
	Region      Region    `json:"region"`
	JoinedAt    time.Time `json:"joinedAt"`
	LastLoginIP string    `json:"lastLoginIp,omitempty"`
}
