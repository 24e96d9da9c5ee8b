package handlers

import (
	"class-website/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

const msgMemberNotFound = "Member not found"

func (a *App) StructureList(c echo.Context) error {
	members, err := a.st.StructureList(c.Request().Context())
	if err != nil {
		return a.storeErr(c, err, "fetch structure", msgMemberNotFound)
	}
	return c.JSON(http.StatusOK, members)
}

func (a *App) StructureCreate(c echo.Context) error {
	var member types.StructureMember
	if err := c.Bind(&member); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	member.ID = ""

	if err := a.st.StructureCreate(c.Request().Context(), &member); err != nil {
		return a.storeErr(c, err, "add member", msgMemberNotFound)
	}
	return c.JSON(http.StatusCreated, &member)
}

func (a *App) StructureUpdate(c echo.Context) error {
	var patch types.StructurePatch
	if err := c.Bind(&patch); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	member, err := a.st.StructureUpdate(c.Request().Context(), c.Param("id"), &patch)
	if err != nil {
		return a.storeErr(c, err, "update member", msgMemberNotFound)
	}
	return c.JSON(http.StatusOK, member)
}

func (a *App) StructureDelete(c echo.Context) error {
	if err := a.st.StructureDelete(c.Request().Context(), c.Param("id")); err != nil {
		return a.storeErr(c, err, "delete member", msgMemberNotFound)
	}
	return c.JSON(http.StatusOK, &types.Message{Message: "Member deleted successfully"})
}
