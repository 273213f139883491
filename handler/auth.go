package handler

import (
	"Inkwell/config"
	"Inkwell/middleware"
	"Inkwell/models"
	"Inkwell/pkg/context"
	"Inkwell/pkg/jwt"
	"Inkwell/pkg/response"
	"Inkwell/pkg/validate"
	"Inkwell/service"
	"Inkwell/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	r.POST("/register", context.Wrap(u.Register)) // 注册
	r.POST("/login", context.Wrap(u.Login))       // 登录
	r.GET("/user", authorize, context.Wrap(u.Me))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	user, err := u.UserService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	resp, err := u.issue(user)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	user, err := u.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	resp, err := u.issue(user)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Me 当前登录用户
func (u *Auth) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.GetUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, types.UserResponse{ID: user.ID, Username: user.Username})
	return nil
}

func (u *Auth) issue(user *models.User) (*types.AuthResponse, error) {
	token, err := jwt.GenerateToken(
		[]byte(u.Config.Jwt.Secret),
		user.ID,
		user.Username,
		jwt.TypeAccess,
		u.Config.Jwt.Expire(),
	)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		Token: token,
		User:  types.UserResponse{ID: user.ID, Username: user.Username},
	}, nil
}
