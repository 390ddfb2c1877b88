package space

import "boxmate/internal/domain/space"

type listOutput struct {
	Body []space.Space
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	ID    string `json:"id" doc:"Идентификатор пространства" minLength:"1"`
	Image string `json:"image" doc:"Изображение пространства"`
	Alt   string `json:"alt" doc:"Отображаемое название"`
}

type patchInput struct {
	ID   string `path:"id" example:"garage" doc:"Идентификатор пространства"`
	Body patchRequest
}

type patchRequest struct {
	Image *string `json:"image,omitempty" doc:"Новое изображение"`
	Alt   *string `json:"alt,omitempty" doc:"Новое отображаемое название"`
}

type spaceOutput struct {
	Status int
	Body   space.Space
}
