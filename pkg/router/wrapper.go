package router

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/virality-gg/backend/pkg/errorx"
	"github.com/virality-gg/backend/pkg/xcontext"
)

func (r *Router) newRequestContext(w http.ResponseWriter, req *http.Request) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithHTTPWriter(ctx, w)
	return ctx
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := router.newRequestContext(w, httpReq)
		defer runClosers(router, ctx)

		if httpReq.Method != method {
			writeResponse(ctx, newErrorResponse(errorx.New(errorx.BadRequest, "Not supported method")))
			return
		}

		ctx, err := runMiddlewares(ctx, router.befores)
		if err != nil {
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		var req Request
		switch method {
		case http.MethodGet:
			err = bindQuery(httpReq, &req)
		case http.MethodPost:
			err = json.NewDecoder(httpReq.Body).Decode(&req)
		}
		if err != nil {
			writeResponse(ctx, newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		if ctx, err = runMiddlewares(ctx, router.afters); err != nil {
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		writeResponse(ctx, newResponse(resp))
	}
}

func wrapRawHandler(router *Router, handler RawHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, httpReq *http.Request) {
		ctx := router.newRequestContext(w, httpReq)
		defer runClosers(router, ctx)

		ctx, err := runMiddlewares(ctx, router.befores)
		if err != nil {
			writeResponse(ctx, newErrorResponse(err))
			return
		}

		if err := handler(ctx); err != nil {
			xcontext.Logger(ctx).Errorf("raw handler failed: %v", err)
		}
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	var err error
	for _, m := range middlewares {
		if ctx, err = m(ctx); err != nil {
			return ctx, err
		}
	}

	return ctx, nil
}

func runClosers(router *Router, ctx context.Context) {
	for _, closer := range router.closers {
		closer(ctx)
	}
}

// bindQuery fills string and int fields of req from the query string using
// json tags as parameter names.
func bindQuery(httpReq *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := httpReq.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)
		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return err
			}
			v.Field(i).SetInt(val)
		}
	}

	return nil
}
