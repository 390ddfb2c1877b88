package item

import "boxmate/internal/domain/item"

type listOutput struct {
	Body []item.Item
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name          string   `json:"name" doc:"Название предмета" minLength:"1"`
	Desc          string   `json:"desc,omitempty" doc:"Описание"`
	Box           string   `json:"box,omitempty" doc:"Метка пространства хранения"`
	ParentID      string   `json:"parentId,omitempty" doc:"Идентификатор родительского предмета"`
	Image         string   `json:"image,omitempty" doc:"Изображение"`
	Collaborators []string `json:"collaborators,omitempty" doc:"Соавторы"`
	CreatedAt     string   `json:"createdAt,omitempty" doc:"Метка времени создания (клиентская)"`
	UpdatedAt     string   `json:"updatedAt,omitempty" doc:"Метка времени обновления (клиентская)"`
}

type patchInput struct {
	ID   string `path:"id" doc:"Идентификатор предмета"`
	Body patchRequest
}

type patchRequest struct {
	Name          *string   `json:"name,omitempty"`
	Desc          *string   `json:"desc,omitempty"`
	Box           *string   `json:"box,omitempty"`
	ParentID      *string   `json:"parentId,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Collaborators *[]string `json:"collaborators,omitempty"`
	UpdatedAt     *string   `json:"updatedAt,omitempty"`
}

type deleteInput struct {
	ID string `path:"id" doc:"Идентификатор предмета"`
}

type deleteOutput struct {
	Status int
}

type itemOutput struct {
	Status int
	Body   item.Item
}
