package dto

import (
	userModel "tudu/internal/domains/user/model"
)

type SignUpRequest struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func (r *SignUpRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Username:       r.Username,
		HashedPassword: hashedPassword,
	}
}

type SignUpResponse struct {
	Username string `json:"username"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	Username string `json:"username"`
}

func (r *MeResponse) FromModel(user userModel.User) {
	r.Username = user.Username
}
