// Package http exposes the BaleConnect marketplace over a JSON API.
// Responses use a success envelope; error messages are bilingual Thai and
// English because the UI surfaces them directly.
package http

import (
	"errors"
	"net/http"
	"time"

	"baleconnect/internal/core/application/usecases/commands"
	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// User-facing error strings. The Thai half is what the UI shows.
const (
	msgMissingFields      = "Missing required fields"
	msgInvalidCredentials = "อีเมลหรือรหัสผ่านไม่ถูกต้อง / Invalid email or password"
	msgEmailTaken         = "อีเมลนี้ถูกใช้งานแล้ว / This email is already registered"
	msgOrderNotFound      = "ไม่พบออเดอร์ / Order not found"
	msgGenericError       = "เกิดข้อผิดพลาด / An error occurred"
	msgCannotCreateOrder  = "ไม่สามารถสร้างออเดอร์ได้ / Cannot create order"
	msgCannotAcceptOrder  = "ไม่สามารถรับงานได้ / Cannot accept order"
	msgCannotAssignBaler  = "ไม่สามารถมอบหมายคนอัดฟางได้ / Cannot assign baler"
	msgCannotUpdateStatus = "ไม่สามารถอัพเดทสถานะได้ / Cannot update status"
	msgCannotFetchOrders  = "ไม่สามารถดึงข้อมูลออเดอร์ได้ / Cannot fetch orders"
	msgCannotFetchUsers   = "ไม่สามารถดึงข้อมูลผู้ใช้ได้ / Cannot fetch users"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	assignBalerHandler       commands.AssignBalerCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getUsersHandler         queries.GetUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	assignBalerHandler commands.AssignBalerCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		createOrderHandler:       createOrderHandler,
		acceptOrderHandler:       acceptOrderHandler,
		assignBalerHandler:       assignBalerHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		authenticateUserHandler:  authenticateUserHandler,
		getOrdersHandler:         getOrdersHandler,
		getUsersHandler:          getUsersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/auth", s.Auth)
	e.POST("/register", s.Register)
	e.POST("/create_order", s.CreateOrder)
	e.POST("/get_orders", s.GetOrders)
	e.POST("/accept_order", s.AcceptOrder)
	e.POST("/assign_baler", s.AssignBaler)
	e.POST("/update_status", s.UpdateStatus)
	e.POST("/get_users", s.GetUsers)
}

// Health handles GET /health - reports service liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "BaleConnect API is running",
		Timestamp: formatTime(time.Now()),
	})
}

// Auth handles POST /auth - checks credentials and returns the profile.
func (s *Server) Auth(ctx echo.Context) error {
	var req AuthRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password, req.UserType)
	if err != nil {
		return badRequest(ctx)
	}

	profile, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: msgInvalidCredentials,
			})
		}
		ctx.Logger().Errorf("login error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgGenericError,
		})
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		User:    newUserProfile(profile),
	})
}

// Register handles POST /register - creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.User.Email,
		req.User.Password,
		req.User.UserType,
		req.User.FullName,
		req.User.Phone,
		req.User.Address,
	)
	if err != nil {
		return badRequest(ctx)
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Error: msgEmailTaken,
			})
		}
		ctx.Logger().Errorf("registration error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgGenericError,
		})
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		Success: true,
		User:    newRegisteredUser(registered),
	})
}

// CreateOrder handles POST /create_order - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	customerID, err := kernel.EntityIDFromString(req.Order.CustomerID)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		req.Order.BaleType,
		req.Order.Quantity,
		req.Order.DeliveryAddress,
		req.Order.PickupDate,
		req.Order.Notes,
	)
	if err != nil {
		return badRequest(ctx)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		ctx.Logger().Errorf("create order error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotCreateOrder,
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		Order:   newCreatedOrder(created),
	})
}

// GetOrders handles POST /get_orders - lists orders with optional filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var req GetOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	query := queries.NewGetOrdersQuery(queries.OrdersFilter{
		CustomerID: req.CustomerID,
		FarmerID:   req.FarmerID,
		BalerID:    req.BalerID,
		Status:     req.Status,
	})

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		ctx.Logger().Errorf("get orders error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotFetchOrders,
		})
	}

	rows := make([]OrderRow, len(orders))
	for i, o := range orders {
		rows[i] = newOrderRow(o)
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{
		Success: true,
		Orders:  rows,
	})
}

// AcceptOrder handles POST /accept_order - a farmer takes an order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	orderID, err := kernel.EntityIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx)
	}
	farmerID, err := kernel.EntityIDFromString(req.FarmerID)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, farmerID)
	if err != nil {
		return badRequest(ctx)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		ctx.Logger().Errorf("accept order error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotAcceptOrder,
		})
	}

	return ctx.JSON(http.StatusOK, AcceptOrderResponse{
		Success: true,
		Order: AcceptedOrder{
			OrderID:  accepted.ID().String(),
			FarmerID: accepted.FarmerID().String(),
			Status:   accepted.Status().String(),
		},
	})
}

// AssignBaler handles POST /assign_baler - puts a baler on an order.
func (s *Server) AssignBaler(ctx echo.Context) error {
	var req AssignBalerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	orderID, err := kernel.EntityIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx)
	}
	balerID, err := kernel.EntityIDFromString(req.BalerID)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewAssignBalerCommand(orderID, balerID)
	if err != nil {
		return badRequest(ctx)
	}

	assigned, err := s.assignBalerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		ctx.Logger().Errorf("assign baler error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotAssignBaler,
		})
	}

	return ctx.JSON(http.StatusOK, AssignBalerResponse{
		Success: true,
		Order: AssignedOrder{
			OrderID: assigned.ID().String(),
			BalerID: assigned.BalerID().String(),
			Status:  assigned.Status().String(),
		},
	})
}

// UpdateStatus handles POST /update_status - moves an order to a new status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	orderID, err := kernel.EntityIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx)
	}
	status, err := order.NewStatus(req.NewStatus)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		ctx.Logger().Errorf("update status error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotUpdateStatus,
		})
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		Success: true,
		Order: UpdatedOrder{
			OrderID: updated.ID().String(),
			Status:  updated.Status().String(),
		},
	})
}

// GetUsers handles POST /get_users - lists active users by role.
func (s *Server) GetUsers(ctx echo.Context) error {
	var req GetUsersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	users, err := s.getUsersHandler.Handle(ctx.Request().Context(), queries.NewGetUsersQuery(req.UserType))
	if err != nil {
		ctx.Logger().Errorf("get users error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgCannotFetchUsers,
		})
	}

	items := make([]UserItem, len(users))
	for i, u := range users {
		items[i] = newUserItem(u)
	}

	return ctx.JSON(http.StatusOK, UsersResponse{
		Success: true,
		Users:   items,
	})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error: msgMissingFields,
	})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Error: msgOrderNotFound,
	})
}
