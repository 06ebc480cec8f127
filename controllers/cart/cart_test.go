package cartController_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"lms/models"
	"lms/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartData struct {
	Items []struct {
		Course struct {
			ID    uint    `json:"id"`
			Title string  `json:"title"`
			Price float64 `json:"price"`
		} `json:"course"`
	} `json:"items"`
	Summary struct {
		ItemCount          int     `json:"itemCount"`
		Subtotal           float64 `json:"subtotal"`
		OriginalTotal      float64 `json:"originalTotal"`
		TotalSavings       float64 `json:"totalSavings"`
		DiscountPercentage int     `json:"discountPercentage"`
	} `json:"summary"`
}

func TestAddToCartRejectsDuplicate(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 100, 0)
	auth := testutil.AuthHeader(t, user)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": course.ID})
	require.Equal(t, 200, resp.StatusCode)

	resp, envelope := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": course.ID})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "Course is already in your cart!", envelope.Message)

	// Cart is unchanged
	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddToCartRejectsEnrolledCourse(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 100, 0)
	testutil.Enroll(t, db, user.ID, course.ID)

	resp, envelope := testutil.DoRequest(t, app, "POST", "/api/cart/add", testutil.AuthHeader(t, user), map[string]interface{}{"courseId": course.ID})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "You are already enrolled in this course!", envelope.Message)
}

func TestAddToCartCourseNotFound(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", testutil.AuthHeader(t, user), map[string]interface{}{"courseId": 9999})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	keep := testutil.CreateCourse(t, db, category.ID, "Keep Me", 10, 10, 0)
	drop := testutil.CreateCourse(t, db, category.ID, "Drop Me", 20, 20, 0)
	auth := testutil.AuthHeader(t, user)

	for _, course := range []models.Course{keep, drop} {
		resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": course.ID})
		require.Equal(t, 200, resp.StatusCode)
	}

	path := fmt.Sprintf("/api/cart/remove/%d", drop.ID)

	resp, first := testutil.DoRequest(t, app, "DELETE", path, auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp, second := testutil.DoRequest(t, app, "DELETE", path, auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	var firstCart, secondCart cartData
	require.NoError(t, json.Unmarshal(first.Data, &firstCart))
	require.NoError(t, json.Unmarshal(second.Data, &secondCart))

	assert.Equal(t, firstCart.Summary, secondCart.Summary)
	assert.Len(t, secondCart.Items, 1)
	assert.Equal(t, keep.ID, secondCart.Items[0].Course.ID)
}

func TestCartSummaryDiscount(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	discounted := testutil.CreateCourse(t, db, category.ID, "Discounted", 80, 100, 0)
	fullPrice := testutil.CreateCourse(t, db, category.ID, "Full Price", 50, 50, 0)
	auth := testutil.AuthHeader(t, user)

	for _, course := range []models.Course{discounted, fullPrice} {
		resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": course.ID})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/cart", auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	var cart cartData
	require.NoError(t, json.Unmarshal(envelope.Data, &cart))

	assert.Equal(t, 2, cart.Summary.ItemCount)
	assert.Equal(t, 130.0, cart.Summary.Subtotal)
	assert.Equal(t, 150.0, cart.Summary.OriginalTotal)
	assert.Equal(t, 20.0, cart.Summary.TotalSavings)
	assert.Equal(t, 13, cart.Summary.DiscountPercentage) // round(100 * 20 / 150)
	assert.GreaterOrEqual(t, cart.Summary.DiscountPercentage, 0)
	assert.LessOrEqual(t, cart.Summary.DiscountPercentage, 100)
}

func TestCartSummaryZeroOriginalTotal(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	free := testutil.CreateCourse(t, db, category.ID, "Free Course", 0, 0, 0)
	auth := testutil.AuthHeader(t, user)

	resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": free.ID})
	require.Equal(t, 200, resp.StatusCode)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/cart", auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	var cart cartData
	require.NoError(t, json.Unmarshal(envelope.Data, &cart))

	assert.Equal(t, 0.0, cart.Summary.OriginalTotal)
	assert.Equal(t, 0, cart.Summary.DiscountPercentage)
}

func TestCartDropsUnresolvableCourses(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	kept := testutil.CreateCourse(t, db, category.ID, "Still Here", 30, 30, 0)
	gone := testutil.CreateCourse(t, db, category.ID, "Deleted Later", 40, 40, 0)
	auth := testutil.AuthHeader(t, user)

	for _, course := range []models.Course{kept, gone} {
		resp, _ := testutil.DoRequest(t, app, "POST", "/api/cart/add", auth, map[string]interface{}{"courseId": course.ID})
		require.Equal(t, 200, resp.StatusCode)
	}

	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", gone.ID).Update("is_deleted", true).Error)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/cart", auth, nil)
	require.Equal(t, 200, resp.StatusCode)

	var cart cartData
	require.NoError(t, json.Unmarshal(envelope.Data, &cart))

	assert.Equal(t, 1, cart.Summary.ItemCount)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, kept.ID, cart.Items[0].Course.ID)
	assert.Equal(t, 30.0, cart.Summary.Subtotal)
}
