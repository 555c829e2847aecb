package scaffold

import "fmt"

const navMarkup = `<header>
  <nav>
    <a class="brand" href="index.html">Portfolio</a>
    <a id="menu-toggle" class="menu-toggle" href="?menu=open" aria-controls="nav-links" aria-expanded="false">Menu</a>
    <ul id="nav-links" class="nav-links">
      <li><a href="index.html">Home</a></li>
      <li><a href="projects.html">Projects</a></li>
      <li><a href="experience.html">Experience</a></li>
      <li><a href="education.html">Education</a></li>
    </ul>
  </nav>
</header>`

func shell(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <link rel="stylesheet" href="static/style.css">
</head>
<body>
%s
<main>
%s
</main>
</body>
</html>
`, title, navMarkup, body)
}

var pageShells = map[string]string{
	"index.html": shell("Portfolio", `  <section class="intro">
    <h1>Hi, I build software.</h1>
    <p>Projects, experience and education are a click away.</p>
  </section>`),
	"projects.html": shell("Projects", `  <h1>Projects</h1>
  <div id="project-container" class="project-grid"><p>Loading projects...</p></div>`),
	"experience.html": shell("Experience", `  <h1>Experience</h1>
  <div id="timeline-container" class="timeline"><p>Loading experience...</p></div>`),
	"education.html": shell("Education", `  <h1>Education</h1>
  <div id="timeline-container" class="timeline"><p>Loading education...</p></div>`),
	"project-detail.html": shell("Project", `  <div id="project-detail-container" class="project-detail"><p>Loading project...</p></div>`),
}

const styleSheet = `body { background: #121212; color: #e0e0e0; font-family: system-ui, sans-serif; margin: 0; }
a { color: #bb86fc; }
nav { display: flex; align-items: center; gap: 1rem; padding: 1rem; }
.nav-links { display: none; list-style: none; margin: 0; padding: 0; }
.nav-links.open { display: block; }
@media (min-width: 768px) { .menu-toggle { display: none; } .nav-links { display: flex; gap: 1rem; } }
main { max-width: 960px; margin: 0 auto; padding: 1rem; }
.project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
.project-card, .timeline-entry { background: #1e1e1e; border-radius: 8px; padding: 1rem; }
.project-card img, .timeline-entry img, .gallery-item-alternating img { max-width: 100%; }
.job-box { margin-top: .5rem; }
.project-detail-main-image { width: 100%; }
.gallery-item-alternating:nth-child(even) { flex-direction: row-reverse; }
.error { color: #ff8a80; }
`
