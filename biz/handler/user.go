package handler

import (
	"context"
	"net/http"

	"gymweb/biz/model/convert"
	"gymweb/biz/model/dto"
	"gymweb/biz/model/errs"
	"gymweb/biz/service/user"
	"gymweb/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateUser 创建用户接口
//
//	@Tags			user
//	@Summary		创建用户接口
//	@Description	创建用户, 密码以哈希形式保存
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateUserReq	true	"create user request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.UserResp}
//	@Router			/api/v1/user/create [POST]
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateUserReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	ro, err := user.NewDefault().CreateUser(ctx, convert.CreateUserReqToDomain(&req))
	observe("create", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, convert.UserROToResp(ro))
}

// ListUsers 用户列表接口
//
//	@Tags			user
//	@Summary		用户列表接口
//	@Description	按存储顺序返回全部用户
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.ListUsersResp}
//	@Router			/api/v1/user/list [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	ros, err := user.NewDefault().FindAll(ctx)
	observe("find_all", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, dto.ListUsersResp{Users: convert.UserROsToResp(ros)})
}

// GetUser 查询用户接口
//
//	@Tags			user
//	@Summary		查询用户接口
//	@Description	根据用户ID查询用户
//	@Produce		json
//	@Param			user_id	query		string	true	"user id"
//	@Success		200		{object}	dto.CommonResp{data=dto.UserResp}
//	@Router			/api/v1/user/get [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	var req dto.GetUserReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	ro, err := user.NewDefault().FindByID(ctx, req.UserID)
	observe("find_by_id", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, convert.UserROToResp(ro))
}

// GetUserByUsername 按用户名查询用户接口
//
//	@Tags			user
//	@Summary		按用户名查询用户接口
//	@Description	根据用户名查询用户
//	@Produce		json
//	@Param			username	query		string	true	"username"
//	@Success		200			{object}	dto.CommonResp{data=dto.UserResp}
//	@Router			/api/v1/user/get_by_username [GET]
func GetUserByUsername(ctx context.Context, c *app.RequestContext) {
	var req dto.GetUserByUsernameReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	ro, err := user.NewDefault().FindByUsernameRO(ctx, req.Username)
	observe("find_by_username", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, convert.UserROToResp(ro))
}

// GetUserByEmail 按邮箱查询用户接口
//
//	@Tags			user
//	@Summary		按邮箱查询用户接口
//	@Description	根据邮箱查询用户
//	@Produce		json
//	@Param			email	query		string	true	"email"
//	@Success		200		{object}	dto.CommonResp{data=dto.UserResp}
//	@Router			/api/v1/user/get_by_email [GET]
func GetUserByEmail(ctx context.Context, c *app.RequestContext) {
	var req dto.GetUserByEmailReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	ro, err := user.NewDefault().FindByEmailRO(ctx, req.Email)
	observe("find_by_email", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, convert.UserROToResp(ro))
}

// UpdateUser 更新用户接口
//
//	@Tags			user
//	@Summary		更新用户接口
//	@Description	整体覆盖用户名, 邮箱和密码
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.UpdateUserReq	true	"update user request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.UserResp}
//	@Router			/api/v1/user/update [POST]
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateUserReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	ro, err := user.NewDefault().UpdateUser(ctx, req.UserID, convert.UpdateUserReqToDomain(&req))
	observe("update", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, convert.UserROToResp(ro))
}

// DeleteUser 删除用户接口
//
//	@Tags			user
//	@Summary		删除用户接口
//	@Description	根据用户ID删除用户
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.DeleteUserReq	true	"delete user request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.DeleteUserResp}
//	@Router			/api/v1/user/delete [POST]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req dto.DeleteUserReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetErr(err), http.StatusBadRequest)
		return
	}

	err := user.NewDefault().DeleteUser(ctx, req.UserID)
	observe("delete", err)
	if err != nil {
		failResp(ctx, c, err)
		return
	}

	resp.SuccessResp(c, dto.DeleteUserResp{})
}
