// Package router - đăng ký route cho domain HRM.
//
// Phân quyền theo 3 cây route:
//   - /admin/*    : full CRUD mọi collection, chỉ role admin
//   - /manager/*  : duyệt đơn + đọc dữ liệu phòng ban, role admin/manager
//   - /employee/* : self-service của chính nhân viên, mọi role đã đăng nhập
//
// Thông báo chung và ngày nghỉ lễ đọc được bởi mọi tài khoản đã đăng nhập.
package router

import (
	hrmhdl "hrm_portal/internal/api/hrm/handler"
	"hrm_portal/internal/api/middleware"
	apirouter "hrm_portal/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register đăng ký toàn bộ route HRM vào group /api/v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	employeeHandler, err := hrmhdl.NewEmployeeHandler()
	if err != nil {
		return err
	}
	departmentHandler, err := hrmhdl.NewDepartmentHandler()
	if err != nil {
		return err
	}
	attendanceHandler, err := hrmhdl.NewAttendanceHandler()
	if err != nil {
		return err
	}
	leaveHandler, err := hrmhdl.NewLeaveHandler()
	if err != nil {
		return err
	}
	expenseHandler, err := hrmhdl.NewExpenseHandler()
	if err != nil {
		return err
	}
	announcementHandler, err := hrmhdl.NewAnnouncementHandler()
	if err != nil {
		return err
	}
	holidayHandler, err := hrmhdl.NewHolidayHandler()
	if err != nil {
		return err
	}
	notificationHandler, err := hrmhdl.NewNotificationHandler()
	if err != nil {
		return err
	}

	authOnly := middleware.AuthMiddleware()
	adminGates := []fiber.Handler{authOnly, middleware.RequireRoles(middleware.RoleAdmin)}
	managerGates := []fiber.Handler{authOnly, middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleManager)}
	authGates := []fiber.Handler{authOnly}

	// ========== ADMIN: full CRUD mọi collection ==========
	r.RegisterCRUDRoutes(v1, "/admin/employee", employeeHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/department", departmentHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/attendance", attendanceHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/leave", leaveHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/expense", expenseHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/announcement", announcementHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/holiday", holidayHandler, apirouter.ReadWriteConfig, adminGates)
	r.RegisterCRUDRoutes(v1, "/admin/notification", notificationHandler, apirouter.ReadWriteConfig, adminGates)

	// ========== MANAGER: duyệt đơn + đọc dữ liệu ==========
	r.RegisterCRUDRoutes(v1, "/manager/employee", employeeHandler, apirouter.ReadOnlyConfig, managerGates)
	r.RegisterCRUDRoutes(v1, "/manager/attendance", attendanceHandler, apirouter.ReadOnlyConfig, managerGates)
	r.RegisterCRUDRoutes(v1, "/manager/leave", leaveHandler, apirouter.ReadWriteConfig, managerGates)
	r.RegisterCRUDRoutes(v1, "/manager/expense", expenseHandler, apirouter.ReadWriteConfig, managerGates)

	apirouter.RegisterRouteWithMiddleware(v1, "/manager/leave", "POST", "/approve/:id", managerGates, leaveHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/manager/leave", "POST", "/reject/:id", managerGates, leaveHandler.HandleReject)
	apirouter.RegisterRouteWithMiddleware(v1, "/manager/expense", "POST", "/approve/:id", managerGates, expenseHandler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/manager/expense", "POST", "/reject/:id", managerGates, expenseHandler.HandleReject)

	// ========== EMPLOYEE: self-service ==========
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/me", "GET", "/", authGates, employeeHandler.HandleGetMyRecord)

	apirouter.RegisterRouteWithMiddleware(v1, "/employee/attendance", "POST", "/check-in", authGates, attendanceHandler.HandleCheckIn)
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/attendance", "POST", "/check-out", authGates, attendanceHandler.HandleCheckOut)
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/attendance", "GET", "/my", authGates, attendanceHandler.HandleMyAttendance)

	apirouter.RegisterRouteWithMiddleware(v1, "/employee/leave", "POST", "/request", authGates, leaveHandler.HandleRequestLeave)
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/leave", "GET", "/my", authGates, leaveHandler.HandleMyLeaves)

	apirouter.RegisterRouteWithMiddleware(v1, "/employee/expense", "POST", "/submit", authGates, expenseHandler.HandleSubmitExpense)
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/expense", "GET", "/my", authGates, expenseHandler.HandleMyExpenses)

	apirouter.RegisterRouteWithMiddleware(v1, "/employee/notification", "GET", "/my", authGates, notificationHandler.HandleMyNotifications)
	apirouter.RegisterRouteWithMiddleware(v1, "/employee/notification", "PUT", "/mark-read/:id", authGates, notificationHandler.HandleMarkRead)

	// ========== CHUNG: đọc được bởi mọi tài khoản đã đăng nhập ==========
	r.RegisterCRUDRoutes(v1, "/hrm/announcement", announcementHandler, apirouter.ReadOnlyConfig, authGates)
	r.RegisterCRUDRoutes(v1, "/hrm/holiday", holidayHandler, apirouter.ReadOnlyConfig, authGates)

	return nil
}
