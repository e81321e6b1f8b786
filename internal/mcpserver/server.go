// Package mcpserver exposes projects, tasks and the assistant as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sevencode7/tasks/internal/app"
	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/usecase"
	"github.com/sevencode7/tasks/internal/usecase/shared"
)

// Name is the server name announced to MCP clients.
const Name = "tasks"

// Server wires the tool handlers to the container.
type Server struct {
	container *app.Container
	assistant *assistant.Assistant
	mcp       *server.MCPServer
}

// New creates a Server with every tool registered.
// The assistant keeps one conversation for the lifetime of the server.
func New(c *app.Container, version string) *Server {
	s := &Server{
		container: c,
		assistant: c.Assistant(),
		mcp:       server.NewMCPServer(Name, version),
	}

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("Lists projects with task counts. The current project is marked with *."),
	), s.listProjectsHandler)

	s.mcp.AddTool(mcp.NewTool("select_project",
		mcp.WithDescription("Makes a project the current one."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Project ID, ID prefix or exact title")),
	), s.selectProjectHandler)

	s.mcp.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("Lists the tasks of a project (default: the current project)."),
		mcp.WithString("project", mcp.Description("Project ID, ID prefix or exact title")),
		mcp.WithString("status", mcp.Description("backlog, doing, review or done")),
	), s.listTasksHandler)

	s.mcp.AddTool(mcp.NewTool("create_task",
		mcp.WithDescription("Creates a task in a project (default: the current project)."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Task title")),
		mcp.WithString("description", mcp.Description("Task description")),
		mcp.WithString("priority", mcp.Description("low, medium, high or critical")),
		mcp.WithString("project", mcp.Description("Project ID, ID prefix or exact title")),
	), s.createTaskHandler)

	s.mcp.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Changes the status and/or priority of a task."),
		mcp.WithString("task", mcp.Required(), mcp.Description("Task ID, ID prefix or exact title")),
		mcp.WithString("status", mcp.Description("backlog, doing, review or done")),
		mcp.WithString("priority", mcp.Description("low, medium, high or critical")),
	), s.updateTaskHandler)

	s.mcp.AddTool(mcp.NewTool("progress_summary",
		mcp.WithDescription("Reports on the current project: summary, priorities or progress."),
		mcp.WithString("kind", mcp.Description("summary (default), priorities or progress")),
	), s.reportHandler)

	s.mcp.AddTool(mcp.NewTool("ask",
		mcp.WithDescription("Sends a message to the task assistant. Commands in its reply are applied to the current project."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The message")),
	), s.askHandler)

	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves requests on stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func arguments(request mcp.CallToolRequest) map[string]any {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return args
}

func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return strings.TrimSpace(v)
}

func toolError(op string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", op, err))
}

func (s *Server) listProjectsHandler(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.container.ListProjectsUseCase().Execute(ctx, usecase.ListProjectsInput{})
	if err != nil {
		return toolError("list projects", err), nil
	}
	if len(out.Projects) == 0 {
		return mcp.NewToolResultText("No projects."), nil
	}
	var sb strings.Builder
	for _, p := range out.Projects {
		marker := " "
		if p.Current {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %s %s (%d/%d done)\n", marker, shared.ShortID(p.Project.ID), p.Project.Title, p.Done, p.Total)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) selectProjectHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	out, err := s.container.SelectProjectUseCase().Execute(ctx, usecase.SelectProjectInput{Ref: stringArg(args, "project")})
	if err != nil {
		return toolError("select project", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Current project: %q", out.Project.Title)), nil
}

func (s *Server) listTasksHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	out, err := s.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{
		ProjectRef: stringArg(args, "project"),
		Status:     stringArg(args, "status"),
	})
	if err != nil {
		return toolError("list tasks", err), nil
	}
	if len(out.Tasks) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tasks in %q.", out.Project.Title)), nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tasks in %q:\n", out.Project.Title)
	for _, t := range out.Tasks {
		fmt.Fprintf(&sb, "- %s [%s] %s (%s)\n", shared.ShortID(t.ID), t.Status, t.Title, t.Priority)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) createTaskHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	out, err := s.container.NewTaskUseCase().Execute(ctx, usecase.NewTaskInput{
		ProjectRef:  stringArg(args, "project"),
		Title:       stringArg(args, "title"),
		Description: stringArg(args, "description"),
		Priority:    stringArg(args, "priority"),
	})
	if err != nil {
		return toolError("create task", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created task %s %q in %q.",
		shared.ShortID(out.Task.ID), out.Task.Title, out.Project.Title)), nil
}

func (s *Server) updateTaskHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	in := usecase.EditTaskInput{Ref: stringArg(args, "task")}
	if v := stringArg(args, "status"); v != "" {
		in.Status = &v
	}
	if v := stringArg(args, "priority"); v != "" {
		in.Priority = &v
	}
	out, err := s.container.EditTaskUseCase().Execute(ctx, in)
	if err != nil {
		return toolError("update task", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Updated %q: %s, %s.",
		out.Task.Title, out.Task.Status.Display(), out.Task.Priority.Display())), nil
}

func (s *Server) reportHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	out, err := s.container.ReportUseCase().Execute(ctx, usecase.ReportInput{Kind: stringArg(args, "kind")})
	if err != nil {
		return toolError("report", err), nil
	}
	return mcp.NewToolResultText(out.Text), nil
}

func (s *Server) askHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := stringArg(arguments(request), "message")
	if message == "" {
		return toolError("ask", domain.ErrEmptyMessage), nil
	}
	reply := s.assistant.Send(ctx, message)
	text := reply.Text
	if notes := reply.Notes(); len(notes) > 0 {
		text += "\n\n(" + strings.Join(notes, "; ") + ")"
	}
	return mcp.NewToolResultText(text), nil
}
