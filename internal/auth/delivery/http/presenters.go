package http

import (
	"invoice-assistant/internal/auth"
	"invoice-assistant/pkg/response"
)

// --- Requests ---

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginReq) toInput(ip string) auth.LoginInput {
	return auth.LoginInput{Username: r.Username, Password: r.Password, IPAddress: ip}
}

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type loginHistoryReq struct {
	Username string `form:"username"`
	Success  string `form:"success"`
	Limit    int    `form:"limit"`
}

// --- Responses ---

type loginResp struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in"`
}

func newLoginResp(o auth.LoginOutput) loginResp {
	return loginResp{Token: o.Token, Username: o.Username, Role: o.Role, ExpiresIn: o.ExpiresIn}
}

type messageResp struct {
	Message string `json:"message"`
}

type loginEventResp struct {
	Username  string            `json:"username"`
	IPAddress string            `json:"ip_address"`
	Success   bool              `json:"success"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newLoginEventsResp(events []auth.LoginEvent) []loginEventResp {
	out := make([]loginEventResp, 0, len(events))
	for _, e := range events {
		out = append(out, loginEventResp{
			Username:  e.Username,
			IPAddress: e.IPAddress,
			Success:   e.Success,
			Timestamp: response.DateTime(e.Timestamp),
		})
	}
	return out
}

type userResp struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func newUsersResp(users []auth.User) []userResp {
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, userResp{Username: u.Username, Role: u.Role})
	}
	return out
}

type statsResp struct {
	TotalAttempts           int            `json:"total_attempts"`
	SuccessfulAttempts      int            `json:"successful_attempts"`
	FailedAttempts          int            `json:"failed_attempts"`
	UniqueUsers             int            `json:"unique_users"`
	UniqueIPs               int            `json:"unique_ips"`
	PotentiallyMaliciousIPs map[string]int `json:"potentially_malicious_ips"`
}

func newStatsResp(s auth.Stats) statsResp {
	ips := s.PotentiallyMaliciousIPs
	if ips == nil {
		ips = map[string]int{}
	}
	return statsResp{
		TotalAttempts:           s.TotalAttempts,
		SuccessfulAttempts:      s.SuccessfulAttempts,
		FailedAttempts:          s.FailedAttempts,
		UniqueUsers:             s.UniqueUsers,
		UniqueIPs:               s.UniqueIPs,
		PotentiallyMaliciousIPs: ips,
	}
}
