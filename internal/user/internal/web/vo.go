package web

type Profile struct {
	Id         int64  `json:"id"`
	SN         string `json:"sn"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Avatar     string `json:"avatar"`
	Role       string `json:"role"`
	TutorId    int64  `json:"tutorId,omitempty"`
	Department string `json:"department,omitempty"`
}

type EditReq struct {
	Avatar     string `json:"avatar"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
}

type CreateUserReq struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	TutorId    int64  `json:"tutorId"`
	Department string `json:"department"`
}

type ListByRoleReq struct {
	Role string `json:"role"`
}

type UserList struct {
	Users []Profile `json:"users"`
}
