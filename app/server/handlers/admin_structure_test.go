package handlers_test

import (
	"class-website/app/server/types"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructure(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.do(t, http.MethodGet, "/api/structure", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var seeded []types.StructureMember
		decode(t, rec, &seeded)
		require.NotEmpty(t, seeded)
		assert.Equal(t, "Wali Kelas", seeded[0].Position)

		rec = ts.do(t, http.MethodPost, "/api/structure", ts.token, map[string]string{"name": "Budi"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Position is required", errorMessage(t, rec))

		rec = ts.do(t, http.MethodPost, "/api/structure", ts.token, map[string]string{
			"position": "Humas",
			"name":     "Budi",
			"icon":     "📣",
			"level":    "division",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var member types.StructureMember
		decode(t, rec, &member)
		assert.NotEmpty(t, member.ID)

		rec = ts.do(t, http.MethodPut, "/api/structure/"+member.ID, ts.token, map[string]string{"name": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Name is required", errorMessage(t, rec))

		rec = ts.do(t, http.MethodPut, "/api/structure/"+member.ID, ts.token, map[string]string{"name": "Sari"})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated types.StructureMember
		decode(t, rec, &updated)
		assert.Equal(t, member.ID, updated.ID)
		assert.Equal(t, "Sari", updated.Name)
		assert.Equal(t, "Humas", updated.Position)

		rec = ts.do(t, http.MethodDelete, "/api/structure/"+member.ID, ts.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.do(t, http.MethodDelete, "/api/structure/"+member.ID, ts.token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Member not found", errorMessage(t, rec))
	})
}
