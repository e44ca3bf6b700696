package http

import "honorly/internal/waitlist"

type joinReq struct {
	Email  string `json:"email" binding:"required"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func (r joinReq) toInput() waitlist.JoinInput {
	return waitlist.JoinInput{Email: r.Email, Name: r.Name, Source: r.Source}
}

type joinResp struct {
	Email         string `json:"email"`
	AlreadyJoined bool   `json:"alreadyJoined"`
}
