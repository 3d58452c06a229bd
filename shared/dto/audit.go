package dto

import (
	"salon/shared/constant"
	"salon/shared/model"
	"salon/shared/timezone"
)

type Audit struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (a *Audit) FromModel(model model.Audit) {
	a.CreatedAt = timezone.FormatMillis(model.CreatedAt, constant.DateFormat)
	a.UpdatedAt = timezone.FormatMillis(model.UpdatedAt, constant.DateFormat)
}
