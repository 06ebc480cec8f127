package categoryController_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	app, db := testutil.SetupApp(t)
	admin := testutil.CreateUser(t, db, "admin@lms.local", models.RoleAdmin)

	resp, envelope := testutil.DoRequest(t, app, "POST", "/api/categories", testutil.AuthHeader(t, admin),
		map[string]interface{}{"name": "Web Development & Design!"})
	require.Equal(t, 201, resp.StatusCode)

	var category models.Category
	require.NoError(t, json.Unmarshal(envelope.Data, &category))
	assert.Equal(t, "web-development-design", category.Slug)
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	app, db := testutil.SetupApp(t)
	student := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/categories", testutil.AuthHeader(t, student),
		map[string]interface{}{"name": "Nope"})
	assert.Equal(t, 403, resp.StatusCode)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	app, db := testutil.SetupApp(t)
	admin := testutil.CreateUser(t, db, "admin@lms.local", models.RoleAdmin)
	testutil.CreateCategory(t, db, "Design", "design")

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/categories", testutil.AuthHeader(t, admin),
		map[string]interface{}{"name": "Design"})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestDeleteCategoryWithCoursesIsRefused(t *testing.T) {
	app, db := testutil.SetupApp(t)
	admin := testutil.CreateUser(t, db, "admin@lms.local", models.RoleAdmin)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 50, 0)

	resp, _ := testutil.DoRequest(t, app, "DELETE", fmt.Sprintf("/api/categories/%d", category.ID),
		testutil.AuthHeader(t, admin), nil)
	assert.Equal(t, 409, resp.StatusCode)

	var reloaded models.Category
	require.NoError(t, db.First(&reloaded, category.ID).Error)
	assert.False(t, reloaded.IsDeleted)
}

func TestDeleteCategoryUnlinksFromParent(t *testing.T) {
	app, db := testutil.SetupApp(t)
	admin := testutil.CreateUser(t, db, "admin@lms.local", models.RoleAdmin)
	parent := testutil.CreateCategory(t, db, "Development", "development")

	child := models.Category{Name: "Web", Slug: "web", ParentID: &parent.ID, IsActive: true}
	require.NoError(t, db.Create(&child).Error)

	resp, _ := testutil.DoRequest(t, app, "DELETE", fmt.Sprintf("/api/categories/%d", child.ID),
		testutil.AuthHeader(t, admin), nil)
	require.Equal(t, 200, resp.StatusCode)

	var reloaded models.Category
	require.NoError(t, db.First(&reloaded, child.ID).Error)
	assert.True(t, reloaded.IsDeleted)
	assert.Nil(t, reloaded.ParentID)
}

func TestListCategoriesRecomputesCourseCount(t *testing.T) {
	app, db := testutil.SetupApp(t)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	testutil.CreateCourse(t, db, category.ID, "Published One", 10, 10, 0)
	testutil.CreateCourse(t, db, category.ID, "Published Two", 20, 20, 0)

	// Unpublished courses are not counted
	draft := models.Course{
		Title: "Draft", CategoryID: category.ID, Level: models.LevelBeginner,
		Instructor: models.Instructor{Name: "Ivan Instructor", Email: "ivan@lms.local"},
	}
	require.NoError(t, db.Create(&draft).Error)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/categories", "", nil)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Categories []models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.Categories, 1)
	assert.EqualValues(t, 2, result.Categories[0].CourseCount)
}

func TestGetCategoryBySlug(t *testing.T) {
	app, db := testutil.SetupApp(t)
	parent := testutil.CreateCategory(t, db, "Development", "development")
	child := models.Category{Name: "Web", Slug: "web", ParentID: &parent.ID, IsActive: true}
	require.NoError(t, db.Create(&child).Error)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/categories/web", "", nil)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Category models.Category `json:"category"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, "Web", result.Category.Name)
	require.NotNil(t, result.Category.Parent)
	assert.Equal(t, "development", result.Category.Parent.Slug)

	resp, _ = testutil.DoRequest(t, app, "GET", "/api/categories/missing", "", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
