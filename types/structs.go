package types

// GitLab REST API v4 response shapes. Only the fields the tools surface are
// declared; everything else in the payload is ignored on decode.

// Project is a GitLab project.
type Project struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	PathWithNamespace string `json:"path_with_namespace"`
	Description       string `json:"description"`
	Visibility        string `json:"visibility"`
	WebURL            string `json:"web_url"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	SSHURLToRepo      string `json:"ssh_url_to_repo"`
}

// Issue is a GitLab issue.
type Issue struct {
	IID    int    `json:"iid"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Author User   `json:"author"`
	WebURL string `json:"web_url"`
}

// MergeRequest is a GitLab merge request.
type MergeRequest struct {
	IID    int    `json:"iid"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Author User   `json:"author"`
	WebURL string `json:"web_url"`
}

// User is a GitLab user or author reference.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Group is a GitLab group.
type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// GroupMember is a member of a group.
type GroupMember struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	AccessLevel int    `json:"access_level"`
}

// Branch is a repository branch.
type Branch struct {
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
}

// Commit is a repository commit.
type Commit struct {
	ID         string `json:"id"`
	ShortID    string `json:"short_id"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Tag is a repository tag.
type Tag struct {
	Name    string  `json:"name"`
	Message string  `json:"message"`
	Commit  *Commit `json:"commit"`
}

// TreeItem is a file or directory in a repository tree listing.
type TreeItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

// FileContent is a repository file, base64-encoded by the API.
type FileContent struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Ref      string `json:"ref"`
}

// CompareResult is the payload of the repository compare endpoint.
type CompareResult struct {
	Commits []Commit `json:"commits"`
	Diffs   []Diff   `json:"diffs"`
}

// Diff is a single file diff in a compare result.
type Diff struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

// Pipeline is a CI/CD pipeline.
type Pipeline struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Ref    string `json:"ref"`
	User   *User  `json:"user"`
}

// PipelineJob is a job within a pipeline.
type PipelineJob struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Stage  string `json:"stage"`
}

// Milestone is a project milestone.
type Milestone struct {
	Title   string `json:"title"`
	State   string `json:"state"`
	DueDate string `json:"due_date"`
}

// Label is a project label.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Hook is a project webhook.
type Hook struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// InvocationRecord is one audited tool call.
type InvocationRecord struct {
	ID        string `json:"id"`
	Tool      string `json:"tool"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Duration  int64  `json:"duration_ms"`
	CreatedAt string `json:"created_at"`
}

// Invocation statuses recorded in the audit timeline.
const (
	InvocationStatusOK    = "ok"
	InvocationStatusError = "error"
)

// TimelineQuery selects a page of audit timeline events.
type TimelineQuery struct {
	Tool   string `json:"tool,omitempty"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// TimelineResponse is a page of audit timeline events.
type TimelineResponse struct {
	Events     []InvocationRecord `json:"events"`
	TotalCount int                `json:"total_count"`
	HasMore    bool               `json:"has_more"`
}
