package site

// pageTemplate is the Go html/template for the viewer page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{if .Dark}}dark{{else}}light{{end}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-live="{{.Live}}">
  <header class="navbar">
    <button class="menu-toggle" id="menu-toggle" aria-label="Toggle navigation">
      <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
      </svg>
    </button>
    <h1 class="project-title">{{.Title}}</h1>
    <form class="search-bar" action="" method="get" role="search">
      <input type="search" id="search-input" name="q" value="{{.Query}}" placeholder="Search..." autocomplete="off">
    </form>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
      </svg>
      <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </header>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-toc" id="sidebar-toc">
      {{.SidebarTOC}}
    </div>
    <p class="no-matches" id="no-matches"{{if not .NoMatches}} hidden{{end}}>No matches for "<span id="no-matches-query">{{.Query}}</span>"</p>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    {{if .Error}}<div class="load-error" role="alert">{{.Error}}</div>{{end}}
    <article class="page-content" id="page-content">
      {{.Content}}
    </article>
  </main>
  <button class="back-to-top" id="back-to-top" aria-label="Back to top" hidden>
    <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><polyline points="18 15 12 9 6 15"/></svg>
  </button>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the viewer.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --link: #228be6;
  --navbar-height: 56px;
  --sidebar-width: 280px;
  --content-max-width: 900px;
  --table-stripe: #f8f9fa;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
  --link: #7aa2f7;
  --table-stripe: #1f2030;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
html { font-size: 16px; scroll-behavior: smooth; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}
a { color: var(--link); text-decoration: none; }
a:hover { text-decoration: underline; }
[hidden] { display: none !important; }

/* ============ Navbar ============ */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 30;
  height: var(--navbar-height);
  display: flex; align-items: center; gap: 1rem;
  padding: 0 1rem;
  background: var(--bg-secondary);
  border-bottom: 1px solid var(--border);
  box-shadow: var(--shadow);
}
.project-title { font-size: 1.1rem; font-weight: 600; white-space: nowrap; }
.search-bar { flex: 1; max-width: 420px; margin-left: auto; }
.search-bar input {
  width: 100%; padding: 0.4rem 0.75rem;
  border: 1px solid var(--border); border-radius: 6px;
  background: var(--bg); color: var(--text); font-size: 0.9rem;
}
.menu-toggle, .theme-toggle {
  background: none; border: none; color: var(--text-secondary);
  cursor: pointer; padding: 0.25rem; display: flex;
}
.menu-toggle { display: none; }
.moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }
[data-theme="dark"] .moon-icon { display: block; }

/* ============ Sidebar ============ */
.sidebar {
  position: fixed; top: var(--navbar-height); bottom: 0; left: 0;
  width: var(--sidebar-width); overflow-y: auto;
  padding: 1rem;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  z-index: 20;
}
.sidebar ul { list-style: none; }
.sidebar ul ul { padding-left: 0.9rem; }
.sidebar li a {
  display: block; padding: 0.2rem 0.5rem; border-radius: 4px;
  color: var(--text-secondary); font-size: 0.9rem;
}
.sidebar li a:hover { background: var(--accent-light); color: var(--accent); text-decoration: none; }
.no-matches { color: var(--text-muted); font-size: 0.9rem; padding: 0.5rem; }
.sidebar-overlay { display: none; }

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  padding: calc(var(--navbar-height) + 2rem) 2rem 4rem;
}
.page-content { max-width: var(--content-max-width); margin: 0 auto; }
.page-content .block { margin-bottom: 1rem; scroll-margin-top: calc(var(--navbar-height) + 1rem); }
.page-content h1 { font-size: 2rem; border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; }
.page-content h2 { font-size: 1.5rem; margin-top: 2rem; }
.page-content h3 { font-size: 1.25rem; margin-top: 1.5rem; }
.page-content h4 { font-size: 1.1rem; color: var(--text-secondary); }
.page-content h5 { font-size: 1rem; color: var(--text-muted); }
.page-content code {
  font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
  font-size: 0.875em; background: var(--code-bg);
  padding: 0.1rem 0.3rem; border-radius: 4px;
}
.page-content pre {
  background: var(--code-bg); border: 1px solid var(--border);
  border-radius: 6px; padding: 1rem; overflow-x: auto;
}
.page-content pre code { background: none; padding: 0; }
.table-wrap { overflow-x: auto; }
.page-content table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 0.4rem 0.75rem; text-align: left; }
.page-content th { background: var(--bg-secondary); }
.page-content tbody tr:nth-child(even) { background: var(--table-stripe); }
.load-error {
  max-width: var(--content-max-width); margin: 0 auto 1rem;
  padding: 0.75rem 1rem; border-radius: 6px;
  background: #fff5f5; color: #c92a2a; border: 1px solid #ffc9c9;
}
.block.filtered-out { display: none; }

/* ============ Back to top ============ */
.back-to-top {
  position: fixed; right: 1.5rem; bottom: 1.5rem;
  width: 40px; height: 40px; border-radius: 50%;
  border: 1px solid var(--border); background: var(--bg-secondary);
  color: var(--text-secondary); cursor: pointer;
  display: flex; align-items: center; justify-content: center;
  box-shadow: var(--shadow);
}

/* ============ Mobile ============ */
@media (max-width: 900px) {
  .menu-toggle { display: flex; }
  .sidebar { transform: translateX(-100%); transition: transform 0.3s ease-in-out; }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible {
    display: block; position: fixed; inset: 0; z-index: 10;
    background: rgba(0,0,0,0.4);
  }
  .content { margin-left: 0; padding: calc(var(--navbar-height) + 1rem) 1rem 3rem; }
}
`

// jsContent is the client script for the viewer.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var live = document.body.getAttribute("data-live") === "true";

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    if (live) {
      fetch("api/theme", {
        method: "PUT",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ dark: theme === "dark" })
      }).catch(function() {});
    } else {
      try { localStorage.setItem("mdview-theme", theme); } catch(e) {}
    }
  }

  if (!live) {
    try {
      var stored = localStorage.getItem("mdview-theme");
      if (stored) html.setAttribute("data-theme", stored);
    } catch(e) {}
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Navigation drawer (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function setMenu(open) {
    sidebar.classList.toggle("open", open);
    overlay.classList.toggle("visible", open);
  }

  if (menuToggle) menuToggle.addEventListener("click", function() {
    setMenu(!sidebar.classList.contains("open"));
  });
  if (overlay) overlay.addEventListener("click", function() { setMenu(false); });
  document.querySelectorAll("#sidebar-toc a").forEach(function(a) {
    a.addEventListener("click", function() { setMenu(false); });
  });

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var noMatches = document.getElementById("no-matches");
  var noMatchesQuery = document.getElementById("no-matches-query");

  // Block content by id, from the search index (static export) or the
  // blocks API (live). Until it arrives, text content stands in.
  var contentIndex = null;

  function blockContent(el) {
    if (!el) return "";
    if (contentIndex && el.id in contentIndex) return contentIndex[el.id];
    return el.textContent.toLowerCase();
  }

  function loadIndex() {
    if (!window.fetch) return;
    fetch(live ? "api/blocks" : "search-index.json")
      .then(function(res) { return res.ok ? res.json() : Promise.reject(res.status); })
      .then(function(data) {
        var entries = Array.isArray(data) ? data : (data.blocks || []);
        var idx = {};
        entries.forEach(function(e) { idx[e.id] = (e.content || "").toLowerCase(); });
        contentIndex = idx;
        if (searchInput && searchInput.value) applyFilter(searchInput.value);
      })
      .catch(function() {});
  }

  function applyFilter(query) {
    var q = query.trim().toLowerCase();
    var visibleHeadings = 0;
    document.querySelectorAll("#page-content .block").forEach(function(el) {
      var match = q === "" || blockContent(el).indexOf(q) !== -1;
      el.classList.toggle("filtered-out", !match);
    });
    document.querySelectorAll("#sidebar-toc li").forEach(function(li) {
      var a = li.querySelector("a");
      var target = document.getElementById(a.getAttribute("data-heading"));
      var match = q === "" || (target !== null && blockContent(target).indexOf(q) !== -1);
      a.hidden = !match;
      if (match) visibleHeadings++;
    });
    if (noMatches) {
      noMatches.hidden = !(q !== "" && visibleHeadings === 0);
      if (noMatchesQuery) noMatchesQuery.textContent = query;
    }
  }

  if (searchInput) {
    searchInput.addEventListener("input", function() { applyFilter(this.value); });
    searchInput.form.addEventListener("submit", function(e) { e.preventDefault(); });
    if (searchInput.value) applyFilter(searchInput.value);
  }
  loadIndex();

  // ===== Back to top =====
  var backToTop = document.getElementById("back-to-top");
  if (backToTop) {
    window.addEventListener("scroll", function() {
      backToTop.hidden = window.scrollY <= 300;
    });
    backToTop.addEventListener("click", function() {
      window.scrollTo({ top: 0, behavior: "smooth" });
    });
  }

  // ===== Live reload =====
  if (live && window.WebSocket) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + location.pathname.replace(/[^\/]*$/, "") + "ws");
    ws.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch(e) { return; }
      if (msg.type === "reload") location.reload();
    };
  }
})();
`
