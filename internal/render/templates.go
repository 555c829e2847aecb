package render

import "html/template"

// Placeholders shown by the browser when an image fails to load
const (
	cardFallbackImage   = "https://placehold.co/300x180/1e1e1e/bb86fc?text=Image+Not+Found"
	wideFallbackImage   = "https://placehold.co/600x400/1e1e1e/bb86fc?text=Image+Not+Found"
	detailFallbackImage = "https://placehold.co/800x400/1e1e1e/bb86fc?text=Main+Image+Not+Found"
)

// Container contents on failure
const (
	projectsErrorHTML   = "<p>Error loading projects. Please try again later.</p>"
	educationErrorHTML  = "<p>Error loading education history. Please try again later.</p>"
	experienceErrorHTML = "<p>Error loading experience history. Please try again later.</p>"
)

const projectCardTemplate = `<div class="project-card">
  <img src="{{.Image}}" alt="{{.Title}}" onerror="this.onerror=null;this.src='` + cardFallbackImage + `';">
  <h3>{{.Title}}</h3>
  <p>{{.Description}}</p>
  <div>
    <a href="{{.GitHubURL}}" target="_blank">GitHub</a>
    <br>
    {{- if .HasDetails}}
    <a href="project-detail.html?id={{.ID}}" class="project-detail-link">Read more...</a>
    {{- end}}
  </div>
</div>`

const educationEntryTemplate = `<div class="timeline-entry">
  <h2>{{.Year}}</h2>
  <a href="{{.Link}}" target="_blank">
    <img src="{{.Image}}" alt="{{.School}}" onerror="this.onerror=null;this.src='` + wideFallbackImage + `';">
  </a>
  <h3>{{.School}}</h3>
  <ul>{{range .Items}}<li><strong>{{.Subject}}:</strong> {{.Grade}}</li>{{end}}</ul>
</div>`

const experienceEntryTemplate = `<div class="timeline-entry">
  <h2>{{.Year}}</h2>
  <a href="{{.Link}}" target="_blank">
    <img src="{{.Image}}" alt="{{.Place}}" onerror="this.onerror=null;this.src='` + wideFallbackImage + `';">
  </a>
  <h3>{{.Place}}</h3>
  <div class="job-box">{{.Description}}</div>
</div>`

const projectDetailTemplate = `<h1>{{.Detail.Title}}</h1>
<img src="{{.Detail.MainImage}}" alt="{{.Detail.Title}} main image" class="project-detail-main-image" onerror="this.onerror=null;this.src='` + detailFallbackImage + `';">
<div class="project-detail-description">
  <h2>About {{.ID}}</h2>
  {{range .Detail.LongDescription}}<p>{{.}}</p>{{end}}
</div>
<aside class="project-detail-tech">
  <h3>Technologies Used</h3>
  <ul>{{range .Detail.Technologies}}<li>{{.}}</li>{{end}}</ul>
</aside>
<div class="project-detail-gallery">
  <h1>Explanation</h1>
  {{- range .Detail.Gallery}}
  <div class="gallery-item-alternating">
    <img src="{{.Image}}" alt="{{.Caption}}" onerror="this.onerror=null;this.src='` + wideFallbackImage + `';">
    <br>
    <div class="gallery-item-text">
      <strong>{{.Caption}}</strong>
      {{- if .Description}}
      <span class="image-description"><br>{{.Description}}</span>
      {{- end}}
      <br><br>
    </div>
  </div>
  {{- else}}
  <p>No additional images for this project.</p>
  {{- end}}
</div>`

const detailErrorTemplate = `<p class="error" style="color: #ff8a80;">Error loading project details: {{.}}</p>`

var templates = template.Must(template.New("project-card").Parse(projectCardTemplate))

func init() {
	template.Must(templates.New("education-entry").Parse(educationEntryTemplate))
	template.Must(templates.New("experience-entry").Parse(experienceEntryTemplate))
	template.Must(templates.New("project-detail").Parse(projectDetailTemplate))
	template.Must(templates.New("detail-error").Parse(detailErrorTemplate))
}
