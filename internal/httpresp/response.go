package httpresp

import "github.com/gin-gonic/gin"

// Envelope padrão: {success, data}. Erros saem pelo httperr.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ListData[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{
		Success: true,
		Data:    data,
	})
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(200, Envelope{
		Success: true,
		Data: ListData[T]{
			Items: items,
			Total: len(items),
		},
	})
}
