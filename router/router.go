package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"Employee-Management-System/config"
	"Employee-Management-System/config/middleware"
	_ "Employee-Management-System/docs"
	"Employee-Management-System/handlers"
	util "Employee-Management-System/pkg/utils"
	"Employee-Management-System/repository"
	"Employee-Management-System/service"
)

// Repositories is the storage the application runs on. The MongoDB and
// in-memory implementations both satisfy it.
type Repositories struct {
	Departments repository.DepartmentRepository
	Positions   repository.PositionRepository
	Employees   repository.EmployeeRepository
	Attendance  repository.AttendanceRepository
}

type Options struct {
	Logger         *zap.Logger
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// New wires services and handlers over repos and returns a ready fiber app.
func New(repos Repositories, opts Options) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "Employee Management System",
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.Recover(logger))
	config.SetupCORS(app, opts.AllowedOrigins)

	SetupRoutes(app, repos, logger, opts.RequestTimeout)
	return app
}

func SetupRoutes(app *fiber.App, repos Repositories, logger *zap.Logger, timeout time.Duration) {
	departmentService := service.NewDepartmentService(repos.Departments, logger.Named("departments"))
	positionService := service.NewPositionService(repos.Positions, logger.Named("positions"))
	employeeService := service.NewEmployeeService(repos.Employees, util.NewEmployeeIDGenerator(), logger.Named("employees"))
	attendanceService := service.NewAttendanceService(repos.Employees, repos.Attendance, logger.Named("attendance"))

	deptHandler := handlers.NewDepartmentHandler(departmentService, timeout)
	positionHandler := handlers.NewPositionHandler(positionService, timeout)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, timeout)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, timeout)

	// Health check & Docs
	app.Get("/", handlers.Health)
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api")

	departments := api.Group("/departments")
	departments.Post("/", deptHandler.CreateDepartment)
	departments.Get("/", deptHandler.GetAllDepartments)
	departments.Get("/:id", deptHandler.GetDepartmentByID)
	departments.Put("/:id", deptHandler.UpdateDepartment)
	departments.Delete("/:id", deptHandler.DeleteDepartment)

	positions := api.Group("/positions")
	positions.Post("/", positionHandler.CreatePosition)
	positions.Get("/", positionHandler.GetAllPositions)
	positions.Get("/:id", positionHandler.GetPositionByID)
	positions.Put("/:id", positionHandler.UpdatePosition)
	positions.Delete("/:id", positionHandler.DeletePosition)

	employees := api.Group("/employees")
	employees.Post("/", employeeHandler.CreateEmployee)
	employees.Get("/", employeeHandler.GetAllEmployees)
	employees.Get("/:id", employeeHandler.GetEmployeeByID)
	employees.Put("/:id", employeeHandler.UpdateEmployee)
	employees.Delete("/:id", employeeHandler.DeleteEmployee)
	employees.Get("/:id/badge", employeeHandler.GetEmployeeBadge)

	attendance := api.Group("/attendance")
	attendance.Post("/time-in", attendanceHandler.TimeIn)
	attendance.Post("/time-out", attendanceHandler.TimeOut)
	attendance.Get("/:employeeId/records", attendanceHandler.GetAttendanceRecords)
	attendance.Get("/:employeeId/records/export", attendanceHandler.ExportAttendanceRecords)
	attendance.Get("/:employeeId/status", attendanceHandler.GetAttendanceStatus)
}
