package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/models"
)

var errUsage = errors.New("invalid arguments")

func dispatch(ctx context.Context, api adapter.BlogAPI, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "register":
		if len(args) < 2 {
			return fmt.Errorf("%w: register <email> <password> [full name]", errUsage)
		}
		req := models.RegisterRequest{Email: args[0], Password: args[1]}
		if len(args) > 2 {
			name := strings.Join(args[2:], " ")
			req.FullName = &name
		}
		v, err := api.Register(ctx, req)
		return emit(out, v, err)

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("%w: login <email> <password>", errUsage)
		}
		v, err := api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		return emit(out, v, err)

	case "me":
		v, err := api.Me(ctx)
		return emit(out, v, err)

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(out)
		skip := fs.Int("skip", 0, "posts to skip")
		limit := fs.Int("limit", 0, "page size, 0 for the server default")
		if err := fs.Parse(args); err != nil {
			return err
		}
		v, err := api.ListPosts(ctx, models.Pagination{Skip: *skip, Limit: *limit})
		return emit(out, v, err)

	case "get":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		v, err := api.GetPost(ctx, id)
		return emit(out, v, err)

	case "create":
		if len(args) != 2 {
			return fmt.Errorf("%w: create <title> <content>", errUsage)
		}
		v, err := api.CreatePost(ctx, models.PostInput{Title: args[0], Content: args[1]})
		return emit(out, v, err)

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err = api.DeletePost(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "post %d deleted\n", id)
		return err

	case "health":
		report, err := api.Health(ctx)
		if printErr := writeJSON(out, report); printErr != nil {
			return printErr
		}
		return err
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected a single post id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: post id %q is not an integer", errUsage, args[0])
	}
	return id, nil
}

func emit(out io.Writer, v any, err error) error {
	if err != nil {
		return err
	}
	return writeJSON(out, v)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
