package handler

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/render"
)

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// decodeBody разбирает JSON тело запроса в dst
func decodeBody(body io.Reader, dst any) error {
	return sonic.ConfigStd.NewDecoder(body).Decode(dst)
}
