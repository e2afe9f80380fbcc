package main

import "Employee-Management-System/cmd"

// @title Employee Management System API
// @version 1.0
// @description Departments, positions, employees and attendance time-in/time-out records.
//
// @host localhost:8080
// @BasePath /api
// @schemes http https
//
// @tag.name Departments
// @tag.description Department management endpoints
//
// @tag.name Positions
// @tag.description Position management endpoints
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Attendance
// @tag.description Attendance time-in/time-out endpoints
func main() {
	cmd.Execute()
}
