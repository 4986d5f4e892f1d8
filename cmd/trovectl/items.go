package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// item mirrors the service's wire shape; only fields the CLI prints.
type item struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Content   *string  `json:"content,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
	Completed *bool    `json:"completed,omitempty"`
}

func newClient() *resty.Client {
	return resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-API-Key", keyFlag).
		SetTimeout(30 * time.Second)
}

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func httpErr(resp *resty.Response) error {
	return fmt.Errorf("http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func runList(c *resty.Client, typ string, tags []string, out io.Writer) error {
	var items []item
	req := c.R().SetResult(&items)
	if typ != "" {
		req.SetQueryParam("type", typ)
	}
	if len(tags) > 0 {
		req.SetQueryParam("tags", strings.Join(tags, ","))
	}
	resp, err := req.Get("/items")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return httpErr(resp)
	}
	for _, it := range items {
		printItemLine(out, it)
	}
	fmt.Fprintf(out, "%d item(s)\n", len(items))
	return nil
}

func runGet(c *resty.Client, id string, out io.Writer) error {
	resp, err := c.R().Get("/items/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return httpErr(resp)
	}
	return printPretty(out, resp.Body())
}

func runCreate(c *resty.Client, typ, title, content string, tags []string, out io.Writer) error {
	payload := map[string]interface{}{
		"type":  typ,
		"title": title,
		"tags":  tags,
	}
	if content != "" {
		payload["content"] = content
	}
	resp, err := c.R().SetBody(payload).Post("/items")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return httpErr(resp)
	}
	return printPretty(out, resp.Body())
}

func runCapture(c *resty.Client, text string, out io.Writer) error {
	resp, err := c.R().SetBody(map[string]string{"text": text}).Post("/items/capture")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return httpErr(resp)
	}
	return printPretty(out, resp.Body())
}

func runDelete(c *resty.Client, id string, out io.Writer) error {
	resp, err := c.R().Delete("/items/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return httpErr(resp)
	}
	fmt.Fprintf(out, "deleted %s\n", id)
	return nil
}

func printItemLine(out io.Writer, it item) {
	mark := " "
	if it.Completed != nil && *it.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %-8s %s  %s", mark, it.Type, it.ID, it.Title)
	if len(it.Tags) > 0 {
		line += "  #" + strings.Join(it.Tags, " #")
	}
	fmt.Fprintln(out, line)
}

func printPretty(out io.Writer, body []byte) error {
	var buf map[string]interface{}
	if err := json.Unmarshal(body, &buf); err != nil {
		_, werr := out.Write(body)
		return werr
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(buf)
}
