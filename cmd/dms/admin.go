package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

func runUsers(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 {
		return usersUsage()
	}

	sub := args[0]
	rest := args[1:]
	switch sub {
	case "list":
		return runUsersList(cmdCtx, rest)
	case "create":
		// User creation is the signup flow; admins drive it from here.
		return runRegister(cmdCtx, rest)
	case "delete":
		return runUsersDelete(cmdCtx, rest)
	case "departments":
		return runUsersDepartments(cmdCtx, rest)
	case "assign-departments":
		return runUsersAssignDepartments(cmdCtx, rest)
	default:
		if err := writef(os.Stderr, "unknown users subcommand %q\n\n", sub); err != nil {
			return err
		}
		return usersUsage()
	}
}

func usersUsage() error {
	return writef(os.Stdout, `Usage: dms users <subcommand> [flags]

Subcommands:
  list                 List directory users
  create               Create an account (--username, --email, --password)
  delete               Delete a user by id
  departments          List a user's department memberships
  assign-departments   Replace a user's department memberships
`)
}

func runUsersList(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("users list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	users, err := cmdCtx.Services.Directory.Users(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, out, users, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "ID\tUSERNAME\tEMAIL\tROLES"); werr != nil {
			return werr
		}
		for _, u := range users {
			if werr := writef(tw, "%d\t%s\t%s\t%s\n",
				u.ID, u.Username, u.Email, joinRoles(u.Roles)); werr != nil {
				return werr
			}
		}
		return nil
	})
}

func runUsersDelete(cmdCtx *commandContext, args []string) error {
	id, err := parseID(args, "user")
	if err != nil {
		return err
	}
	if err := cmdCtx.Services.Directory.DeleteUser(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(os.Stdout, "user %d deleted\n", id)
}

func runUsersDepartments(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("users departments", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "user")
	if err != nil {
		return err
	}

	depts, err := cmdCtx.Services.Directory.UserDepartments(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}
	return renderDepartments(out, depts)
}

type assignDepartmentsOptions struct {
	UserID      int64
	Departments string
}

func runUsersAssignDepartments(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("users assign-departments", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts assignDepartmentsOptions
	fs.Int64Var(&opts.UserID, "user", 0, "User id")
	fs.StringVar(&opts.Departments, "departments", "", "Comma-separated department ids (empty clears all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids, err := parseIDList(opts.Departments)
	if err != nil {
		return err
	}

	if err := cmdCtx.Services.Directory.AssignDepartments(cmdCtx.Ctx, model.AssignDepartmentsRequest{
		UserID:        opts.UserID,
		DepartmentIDs: ids,
	}); err != nil {
		return err
	}
	return writef(os.Stdout, "user %d now belongs to %d department(s)\n", opts.UserID, len(ids))
}

func runDepartments(cmdCtx *commandContext, args []string) error {
	if len(args) > 0 && args[0] == "users" {
		return runDepartmentUsers(cmdCtx, args[1:])
	}
	return runNamedEntity(cmdCtx, args, namedEntityCommands{
		noun:  "department",
		usage: departmentsUsage,
		list: func(ctx *commandContext, out outputOptions) error {
			depts, err := ctx.Services.Directory.Departments(ctx.Ctx)
			if err != nil {
				return err
			}
			return renderDepartments(out, depts)
		},
		create: func(ctx *commandContext, name, description string) error {
			dept, err := ctx.Services.Directory.CreateDepartment(ctx.Ctx, model.DepartmentRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return writef(os.Stdout, "department %d created\n", dept.ID)
		},
		update: func(ctx *commandContext, id int64, name, description string) error {
			dept, err := ctx.Services.Directory.UpdateDepartment(ctx.Ctx, id, model.DepartmentRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return writef(os.Stdout, "department %d updated\n", dept.ID)
		},
		remove: func(ctx *commandContext, id int64) error {
			if err := ctx.Services.Directory.DeleteDepartment(ctx.Ctx, id); err != nil {
				return err
			}
			return writef(os.Stdout, "department %d deleted\n", id)
		},
	})
}

func runDepartmentUsers(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("departments users", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var out outputOptions
	addOutputFlags(fs, &out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := parseID(fs.Args(), "department")
	if err != nil {
		return err
	}

	users, err := cmdCtx.Services.Directory.DepartmentUsers(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, out, users, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "ID\tUSERNAME\tEMAIL\tROLES"); werr != nil {
			return werr
		}
		for _, u := range users {
			if werr := writef(tw, "%d\t%s\t%s\t%s\n",
				u.ID, u.Username, u.Email, joinRoles(u.Roles)); werr != nil {
				return werr
			}
		}
		return nil
	})
}

func departmentsUsage() error {
	return writef(os.Stdout, `Usage: dms departments <subcommand> [flags]

Subcommands:
  list     List departments
  users    List a department's members (admin)
  create   Create a department (--name, --description)
  update   Update a department (id, --name, --description)
  delete   Delete a department by id
`)
}

func runCategories(cmdCtx *commandContext, args []string) error {
	return runNamedEntity(cmdCtx, args, namedEntityCommands{
		noun:  "category",
		usage: categoriesUsage,
		list: func(ctx *commandContext, out outputOptions) error {
			cats, err := ctx.Services.Directory.Categories(ctx.Ctx)
			if err != nil {
				return err
			}
			return renderResult(os.Stdout, out, cats, func(tw *tabwriter.Writer) error {
				if werr := writeln(tw, "ID\tNAME\tDESCRIPTION"); werr != nil {
					return werr
				}
				for _, c := range cats {
					if werr := writef(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.Description); werr != nil {
						return werr
					}
				}
				return nil
			})
		},
		create: func(ctx *commandContext, name, description string) error {
			cat, err := ctx.Services.Directory.CreateCategory(ctx.Ctx, model.CategoryRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return writef(os.Stdout, "category %d created\n", cat.ID)
		},
		update: func(ctx *commandContext, id int64, name, description string) error {
			cat, err := ctx.Services.Directory.UpdateCategory(ctx.Ctx, id, model.CategoryRequest{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}
			return writef(os.Stdout, "category %d updated\n", cat.ID)
		},
		remove: func(ctx *commandContext, id int64) error {
			if err := ctx.Services.Directory.DeleteCategory(ctx.Ctx, id); err != nil {
				return err
			}
			return writef(os.Stdout, "category %d deleted\n", id)
		},
	})
}

func categoriesUsage() error {
	return writef(os.Stdout, `Usage: dms categories <subcommand> [flags]

Subcommands:
  list     List categories
  create   Create a category (--name, --description)
  update   Update a category (id, --name, --description)
  delete   Delete a category by id
`)
}

// namedEntityCommands factors the identical list/create/update/delete
// dispatch shared by departments and categories.
type namedEntityCommands struct {
	noun   string
	usage  func() error
	list   func(ctx *commandContext, out outputOptions) error
	create func(ctx *commandContext, name, description string) error
	update func(ctx *commandContext, id int64, name, description string) error
	remove func(ctx *commandContext, id int64) error
}

func runNamedEntity(cmdCtx *commandContext, args []string, cmds namedEntityCommands) error {
	if len(args) == 0 {
		return cmds.usage()
	}

	sub := args[0]
	rest := args[1:]
	switch sub {
	case "list":
		fs := flag.NewFlagSet(cmds.noun+" list", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		var out outputOptions
		addOutputFlags(fs, &out)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return cmds.list(cmdCtx, out)

	case "create":
		name, description, err := parseNamedEntityFlags(cmds.noun+" create", rest)
		if err != nil {
			return err
		}
		return cmds.create(cmdCtx, name, description)

	case "update":
		fs := flag.NewFlagSet(cmds.noun+" update", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		var name, description string
		fs.StringVar(&name, "name", "", "New name")
		fs.StringVar(&description, "description", "", "New description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := parseID(fs.Args(), cmds.noun)
		if err != nil {
			return err
		}
		return cmds.update(cmdCtx, id, name, description)

	case "delete":
		id, err := parseID(rest, cmds.noun)
		if err != nil {
			return err
		}
		return cmds.remove(cmdCtx, id)

	default:
		if err := writef(os.Stderr, "unknown %s subcommand %q\n\n", cmds.noun, sub); err != nil {
			return err
		}
		return cmds.usage()
	}
}

func parseNamedEntityFlags(label string, args []string) (name, description string, err error) {
	fs := flag.NewFlagSet(label, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&name, "name", "", "Name")
	fs.StringVar(&description, "description", "", "Description")
	if parseErr := fs.Parse(args); parseErr != nil {
		return "", "", parseErr
	}
	return name, description, nil
}

func renderDepartments(out outputOptions, depts []model.Department) error {
	return renderResult(os.Stdout, out, depts, func(tw *tabwriter.Writer) error {
		if werr := writeln(tw, "ID\tNAME\tDESCRIPTION"); werr != nil {
			return werr
		}
		for _, d := range depts {
			if werr := writef(tw, "%d\t%s\t%s\n", d.ID, d.Name, d.Description); werr != nil {
				return werr
			}
		}
		return nil
	})
}

// parseIDList parses a comma-separated id list; "" yields an empty list.
func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, apperrors.Validation("invalid department id " + strconv.Quote(part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
