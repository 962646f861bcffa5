package dto

import "github.com/Bekzhan-O/tutor-dashboard/pkg/validator"

type TokenRequest struct {
	Password string `json:"password"`
}

func ValidateTokenRequest(v *validator.Validator, req *TokenRequest) {
	v.Check(req.Password != "", "password", "must be provided")
	v.Check(len(req.Password) <= 100, "password", "must not be more than 100 bytes long")
}
