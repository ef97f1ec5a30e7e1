package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
	"github.com/thesrcielos/PrinceLevels/internal/catalog"
	"github.com/thesrcielos/PrinceLevels/internal/level"
)

const INVALID_REQUEST = "invalid request"

var LevelService *level.LevelService
var CatalogStore *catalog.Store

// RegisterLevelRoutes wires the read-only level endpoints.
func RegisterLevelRoutes(g *echo.Group) {
	g.GET("", ListLevelsHandler)
	g.GET("/:number", GetLevelHandler)
	g.GET("/:number/binary", GetLevelBinaryHandler)
	g.GET("/:number/revisions", ListRevisionsHandler)
}

// RegisterLevelEditRoutes wires the mutating endpoints; the caller adds
// the JWT middleware to the group.
func RegisterLevelEditRoutes(g *echo.Group) {
	g.POST("/:number", SaveLevelHandler)
	g.POST("/:number/export", ExportLevelHandler)
}

func ListLevelsHandler(c echo.Context) error {
	summaries, err := LevelService.List()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"levels": summaries})
}

func GetLevelHandler(c echo.Context) error {
	number, err := levelNumberParam(c)
	if err != nil {
		return err
	}

	doc, errLoad := LevelService.Get(number)
	if errLoad != nil {
		return httpError(errLoad)
	}
	return c.JSON(http.StatusOK, doc)
}

func GetLevelBinaryHandler(c echo.Context) error {
	number, err := levelNumberParam(c)
	if err != nil {
		return err
	}

	data, errLoad := LevelService.GetBinary(number)
	if errLoad != nil {
		return httpError(errLoad)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=LEVEL%d", number))
	return c.Blob(http.StatusOK, "application/octet-stream", data)
}

func ListRevisionsHandler(c echo.Context) error {
	number, err := levelNumberParam(c)
	if err != nil {
		return err
	}

	revisions, errList := CatalogStore.ListRevisions(number)
	if errList != nil {
		return httpError(errList)
	}
	return c.JSON(http.StatusOK, echo.Map{"revisions": revisions})
}

func SaveLevelHandler(c echo.Context) error {
	number, err := levelNumberParam(c)
	if err != nil {
		return err
	}

	var doc level.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if doc.LevelNumber != number {
		return echo.NewHTTPError(http.StatusBadRequest, "level number mismatch")
	}

	author, errAuthor := authenticatedUsername(c)
	if errAuthor != nil {
		return errAuthor
	}

	if err := LevelService.Save(&doc, author); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"saved": true})
}

func ExportLevelHandler(c echo.Context) error {
	number, err := levelNumberParam(c)
	if err != nil {
		return err
	}

	if err := LevelService.Export(number); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"exported": true})
}

func levelNumberParam(c echo.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid level number")
	}
	return number, nil
}

func authenticatedUsername(c echo.Context) (string, error) {
	claims, err := authenticatedClaims(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

func httpError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.Code, appErr.Message)
	}
	return err
}
