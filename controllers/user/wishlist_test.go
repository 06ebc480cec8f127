package userController_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddRejectsDuplicate(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 100, 0)
	auth := testutil.AuthHeader(t, user)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/users/wishlist/add", auth, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, 200, resp.StatusCode)

	resp, envelope := testutil.DoRequest(t, app, "POST", "/api/users/wishlist/add", auth, map[string]interface{}{"courseId": course.ID})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "Course is already in your wishlist!", envelope.Message)
}

func TestWishlistRemoveIsIdempotent(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 100, 0)
	auth := testutil.AuthHeader(t, user)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/users/wishlist/add", auth, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, 200, resp.StatusCode)

	path := fmt.Sprintf("/api/users/wishlist/remove/%d", course.ID)
	resp, _ = testutil.DoRequest(t, app, "DELETE", path, auth, nil)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = testutil.DoRequest(t, app, "DELETE", path, auth, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWishlistResolvesCourses(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 100, 0)
	auth := testutil.AuthHeader(t, user)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/users/wishlist/add", auth, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, 200, resp.StatusCode)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/users/wishlist", auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		Wishlist []struct {
			ID           uint   `json:"id"`
			Title        string `json:"title"`
			CategorySlug string `json:"categorySlug"`
		} `json:"wishlist"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.Wishlist, 1)
	assert.Equal(t, course.ID, result.Wishlist[0].ID)
	assert.Equal(t, "dev", result.Wishlist[0].CategorySlug)
}
