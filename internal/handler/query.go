package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/service"
)

// listQuery reads the shared list-view controls from query parameters.
func listQuery(c *gin.Context) service.ListQuery {
	return service.ListQuery{
		Search:    strings.TrimSpace(c.Query("q")),
		SortField: strings.TrimSpace(c.Query("sort")),
		SortOrder: listview.Order(c.Query("order")),
		GroupBy:   strings.TrimSpace(c.Query("group_by")),
	}
}
