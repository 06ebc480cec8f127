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

type progressData struct {
	Progress         int `json:"progress"`
	CompletedLessons int `json:"completedLessons"`
}

func TestUpdateCourseProgress(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 50, 4)
	testutil.Enroll(t, db, user.ID, course.ID)
	auth := testutil.AuthHeader(t, user)

	var lessons []models.Lesson
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("position asc").Find(&lessons).Error)
	require.Len(t, lessons, 4)

	path := fmt.Sprintf("/api/users/course-progress/%d", course.ID)
	complete := func(lessonID uint, completed bool) progressData {
		resp, envelope := testutil.DoRequest(t, app, "PUT", path, auth, map[string]interface{}{
			"lessonId":  lessonID,
			"completed": completed,
		})
		require.Equal(t, 200, resp.StatusCode)
		var result progressData
		require.NoError(t, json.Unmarshal(envelope.Data, &result))
		return result
	}

	// Completing lessons 1 and 2 of 4 yields 50%
	result := complete(lessons[0].ID, true)
	assert.Equal(t, 25, result.Progress)

	result = complete(lessons[1].ID, true)
	assert.Equal(t, 50, result.Progress)
	assert.Equal(t, 2, result.CompletedLessons)

	// Un-completing lesson 1 yields 25%
	result = complete(lessons[0].ID, false)
	assert.Equal(t, 25, result.Progress)
	assert.Equal(t, 1, result.CompletedLessons)

	// Completing the same lesson twice is idempotent
	result = complete(lessons[0].ID, true)
	assert.Equal(t, 50, result.Progress)
	result = complete(lessons[0].ID, true)
	assert.Equal(t, 50, result.Progress)
	assert.Equal(t, 2, result.CompletedLessons)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, 50, enrollment.Progress)
	assert.False(t, enrollment.LastAccessed.IsZero())
}

func TestUpdateCourseProgressZeroLessons(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Empty Course", 10, 10, 0)
	testutil.Enroll(t, db, user.ID, course.ID)

	resp, envelope := testutil.DoRequest(t, app, "PUT", fmt.Sprintf("/api/users/course-progress/%d", course.ID),
		testutil.AuthHeader(t, user), map[string]interface{}{"lessonId": 1, "completed": true})
	require.Equal(t, 200, resp.StatusCode)

	var result progressData
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, 0, result.Progress)
}

func TestUpdateCourseProgressWithoutEnrollment(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 50, 4)

	resp, envelope := testutil.DoRequest(t, app, "PUT", fmt.Sprintf("/api/users/course-progress/%d", course.ID),
		testutil.AuthHeader(t, user), map[string]interface{}{"lessonId": 1, "completed": true})
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Course enrollment not found!", envelope.Message)
}

func TestGetEnrolledCourses(t *testing.T) {
	app, db := testutil.SetupApp(t)
	user := testutil.CreateUser(t, db, "student@lms.local", models.RoleStudent)
	category := testutil.CreateCategory(t, db, "Dev", "dev")
	course := testutil.CreateCourse(t, db, category.ID, "Go Basics", 50, 50, 4)
	testutil.Enroll(t, db, user.ID, course.ID)

	resp, envelope := testutil.DoRequest(t, app, "GET", "/api/users/enrolled-courses", testutil.AuthHeader(t, user), nil)
	require.Equal(t, 200, resp.StatusCode)

	var result struct {
		EnrolledCourses []struct {
			CourseID     uint   `json:"courseId"`
			Title        string `json:"title"`
			TotalLessons int    `json:"totalLessons"`
			Progress     int    `json:"progress"`
		} `json:"enrolledCourses"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.EnrolledCourses, 1)
	assert.Equal(t, course.ID, result.EnrolledCourses[0].CourseID)
	assert.Equal(t, 4, result.EnrolledCourses[0].TotalLessons)
	assert.Equal(t, 0, result.EnrolledCourses[0].Progress)
}
