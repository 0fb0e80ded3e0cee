// Command inkwell-cli is a thin client for the Inkwell HTTP API: it lists
// projects and prompts, shows a single prompt, and updates a prompt's status.
// It carries no business logic of its own.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"
)

const defaultBaseURL = "http://127.0.0.1:7891"

type project struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type prompt struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Content     *string `json:"content"`
	ProjectID   *uint   `json:"project_id"`
	ProjectName string  `json:"project_name"`
	OrderNumber int     `json:"order_number"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) do(method, endpoint string, query url.Values, body any, out any) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("connection error: %w (is the Inkwell server running at %s?)", err, c.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found: %s", endpoint)
	}
	if resp.StatusCode >= 400 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(text))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func main() {
	baseURL := os.Getenv("INKWELL_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	globals := flag.NewFlagSet("inkwell-cli", flag.ExitOnError)
	urlFlag := globals.String("url", baseURL, "Inkwell server base URL")
	globals.Usage = usage
	globals.Parse(os.Args[1:])

	args := globals.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	api := newClient(*urlFlag)

	var err error
	switch args[0] + " " + args[1] {
	case "projects list":
		err = projectsList(api, args[2:])
	case "prompts list":
		err = promptsList(api, args[2:])
	case "prompts get":
		err = promptsGet(api, args[2:])
	case "prompts set-status":
		err = promptsSetStatus(api, args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: inkwell-cli [-url URL] <command>

Commands:
  projects list [-json]
  prompts list [-project ID] [-status STATUS] [-all-status] [-json]
  prompts get <id> [-json]
  prompts set-status <id> <draft|active|archived>

The base URL defaults to $INKWELL_URL or `+defaultBaseURL+`.`)
}

func projectsList(api *client, args []string) error {
	fs := flag.NewFlagSet("projects list", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "output JSON")
	fs.Parse(args)

	var projects []project
	if err := api.do(http.MethodGet, "/api/projects", nil, nil, &projects); err != nil {
		return err
	}

	if *asJSON {
		return printJSON(projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tCreated")
	for _, p := range projects {
		created := p.CreatedAt
		if len(created) > 10 {
			created = created[:10]
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, created)
	}
	return w.Flush()
}

func promptsList(api *client, args []string) error {
	fs := flag.NewFlagSet("prompts list", flag.ExitOnError)
	projectID := fs.Uint("project", 0, "filter by project ID")
	status := fs.String("status", "draft", "filter by status")
	allStatus := fs.Bool("all-status", false, "show prompts with any status")
	asJSON := fs.Bool("json", false, "output JSON")
	fs.Parse(args)

	query := url.Values{}
	if *projectID != 0 {
		query.Set("project_id", strconv.FormatUint(uint64(*projectID), 10))
	}
	if !*allStatus {
		query.Set("status", *status)
	}

	var prompts []prompt
	if err := api.do(http.MethodGet, "/api/prompts", query, nil, &prompts); err != nil {
		return err
	}

	if *asJSON {
		return printJSON(prompts)
	}

	if len(prompts) == 0 {
		fmt.Println("No prompts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tStatus\tProject")
	for _, p := range prompts {
		name := p.ProjectName
		if name == "" {
			name = "None"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Status, name)
	}
	return w.Flush()
}

func promptsGet(api *client, args []string) error {
	fs := flag.NewFlagSet("prompts get", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "output JSON")

	if len(args) < 1 {
		return fmt.Errorf("usage: prompts get <id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q", args[0])
	}
	fs.Parse(args[1:])

	var p prompt
	endpoint := fmt.Sprintf("/api/prompts/%d", id)
	if err := api.do(http.MethodGet, endpoint, nil, nil, &p); err != nil {
		return err
	}

	if *asJSON {
		return printJSON(p)
	}

	fmt.Println("Prompt Details:")
	fmt.Printf("  ID: %d\n", p.ID)
	fmt.Printf("  Name: %s\n", p.Name)
	fmt.Printf("  Status: %s\n", p.Status)
	fmt.Printf("  Project: %s\n", p.ProjectName)
	fmt.Printf("  Created: %s\n", p.CreatedAt)
	fmt.Printf("  Updated: %s\n", p.UpdatedAt)
	if p.Content != nil && *p.Content != "" {
		content := *p.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		fmt.Println("  Content:")
		fmt.Printf("    %s\n", content)
	} else {
		fmt.Println("  Content: (empty)")
	}
	return nil
}

func promptsSetStatus(api *client, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: prompts set-status <id> <draft|active|archived>")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid prompt id %q", args[0])
	}
	status := args[1]

	var p prompt
	endpoint := fmt.Sprintf("/api/prompts/%d", id)
	body := map[string]string{"status": status}
	if err := api.do(http.MethodPut, endpoint, nil, body, &p); err != nil {
		return err
	}

	fmt.Printf("Updated prompt %d status to '%s'\n", p.ID, p.Status)
	fmt.Printf("  Name: %s\n", p.Name)
	fmt.Printf("  Project: %s\n", p.ProjectName)
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
