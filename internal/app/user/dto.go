package user

type Profile string

const (
	ProfilePublic  Profile = "public"
	ProfilePrivate Profile = "private"
)

// User is the API projection of a member. The password hash never
// leaves the server: the field is excluded from every JSON encoding.
type User struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"-"`
	Location      string   `json:"location"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  string   `json:"availability"`
	Profile       Profile  `json:"profile"`
	Rating        float64  `json:"rating"`
	ProfilePhoto  string   `json:"profilePhoto"`
}

type CreateUserReq struct {
	Name         string
	Email        string
	Password     []byte `json:"-"`
	Location     string
	ProfilePhoto string
}

// UpdateUserReq carries a partial profile update. Zero values mean
// "leave unchanged": an empty string or empty list never clears a field.
type UpdateUserReq struct {
	UserID        int64    `json:"-"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  string   `json:"availability"`
	Profile       Profile  `json:"profile"`
	ProfilePhoto  string   `json:"profilePhoto"`
}
