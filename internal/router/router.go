package router

import (
	"github.com/gin-gonic/gin"
	"github.com/svernekar/examportal/config"
	authctrl "github.com/svernekar/examportal/internal/controller/auth"
	facultyctrl "github.com/svernekar/examportal/internal/controller/faculty"
	studentctrl "github.com/svernekar/examportal/internal/controller/student"
	"github.com/svernekar/examportal/internal/middleware"
	"github.com/svernekar/examportal/internal/model"
)

// Register wires the REST surface. Paths mirror the client's existing
// contract; authorization is enforced here, per request, on the verified
// token rather than on whatever the client decoded locally.
func Register(
	r *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	facultyCtrl *facultyctrl.FacultyController,
	studentCtrl *studentctrl.StudentController,
) {
	// Public
	r.POST("/signup", authCtrl.Signup)
	r.POST("/login", authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)

	authed := r.Group("")
	authed.Use(middleware.AuthRequired(cfg))

	// Any authenticated role
	authed.GET("/profile/:userId", authCtrl.Profile)
	authed.GET("/department/tests", facultyCtrl.GetDepartmentTests)
	authed.GET("/test/details", facultyCtrl.GetTestDetails)
	authed.GET("/test/questions", facultyCtrl.GetTestQuestions)

	// Authoring
	facultyOnly := authed.Group("")
	facultyOnly.Use(middleware.RequireRoles(model.RoleFaculty))
	facultyOnly.POST("/questions", facultyCtrl.CreateQuestion)
	facultyOnly.GET("/getquestions", facultyCtrl.GetQuestions)
	facultyOnly.POST("/create-test", facultyCtrl.CreateTest)
	facultyOnly.GET("/faculty/tests", facultyCtrl.GetFacultyTests)

	// Attempt flow
	studentOnly := authed.Group("")
	studentOnly.Use(middleware.RequireRoles(model.RoleStudent))
	studentOnly.GET("/get-tests", studentCtrl.GetAvailableTests)
	studentOnly.GET("/test/questions/student", studentCtrl.GetTestQuestions)
	studentOnly.GET("/test/duration", studentCtrl.GetTestDuration)
	studentOnly.POST("/start-test", studentCtrl.StartTest)
	studentOnly.PUT("/update-test-status/:recordId", studentCtrl.UpdateTestStatus)
}
