package handler

import (
	"context"

	"gymweb/biz/metrics"
	"gymweb/biz/model/errs"
	"gymweb/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func bindAndValidate(c *app.RequestContext, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return validate.Struct(req)
}

func failResp(ctx context.Context, c *app.RequestContext, err error) {
	if errs.IsDuplicatedErr(err) {
		hlog.CtxNoticef(ctx, "duplicated user: %v", err)
		resp.FailResp(c, errs.UserDuplicated)
		return
	}
	if _, ok := errs.As(err); !ok {
		hlog.CtxErrorf(ctx, "user service err: %v", err)
	}
	resp.FailResp(c, err)
}

func observe(op string, err error) {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errs.Is(err, errs.UserNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.UserOpsTotal.WithLabelValues(op, result).Inc()
}
