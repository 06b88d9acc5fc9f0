// controllers/pages.go
package controllers

import (
	"github.com/gin-gonic/gin"
)

// RegisterIdeasPage mounts the server-rendered tracker page. The page
// is a thin client of the JSON API: every mutation posts to /api/v1
// and re-fetches the list afterwards.
func RegisterIdeasPage(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Investment Ideas Tracker</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }

    body {
      background: #f3f4f6;
      color: #1f2937;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
      min-height: 100vh;
      padding: 24px;
    }

    .container { max-width: 960px; margin: 0 auto; }

    h1 { font-size: 2rem; margin-bottom: 0.25rem; }
    .subtitle { color: #6b7280; margin-bottom: 2rem; }

    .card {
      background: #ffffff;
      border: 1px solid #e5e7eb;
      border-radius: 12px;
      padding: 1.5rem;
      margin-bottom: 1.5rem;
      box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
    }

    .card h2 { font-size: 1.2rem; margin-bottom: 1rem; }

    label { display: block; font-size: 0.85rem; color: #374151; margin-bottom: 0.25rem; }
    input, textarea, select {
      width: 100%;
      padding: 0.5rem 0.75rem;
      border: 1px solid #d1d5db;
      border-radius: 8px;
      font-size: 0.95rem;
      margin-bottom: 0.75rem;
      font-family: inherit;
    }
    textarea { resize: vertical; }

    button {
      padding: 0.5rem 1.25rem;
      background: #2563eb;
      color: #ffffff;
      border: none;
      border-radius: 8px;
      cursor: pointer;
      font-weight: 600;
      font-size: 0.9rem;
    }
    button:hover { background: #1d4ed8; }
    button.secondary { background: #6b7280; }
    button.danger { background: #dc2626; }

    .toolbar { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
    .toolbar select { width: 200px; margin-bottom: 0; }
    .count { color: #6b7280; font-size: 0.9rem; }

    .idea { border-top: 1px solid #e5e7eb; padding: 1rem 0; }
    .idea-head { display: flex; justify-content: space-between; align-items: center; }
    .idea-title { font-size: 1.05rem; font-weight: 600; }
    .idea-date { color: #6b7280; font-size: 0.85rem; margin: 0.25rem 0; }
    .idea-desc { margin: 0.4rem 0; }
    .idea-notes { color: #4b5563; font-size: 0.9rem; white-space: pre-wrap; margin: 0.4rem 0; }
    .idea-actions { margin-top: 0.5rem; display: flex; gap: 0.5rem; }

    .badge { padding: 0.2rem 0.7rem; border-radius: 999px; font-size: 0.8rem; font-weight: 600; }
    .badge-Researching { background: #dbeafe; color: #1e40af; }
    .badge-Watchlist { background: #fef3c7; color: #92400e; }
    .badge-Invested { background: #d1fae5; color: #065f46; }
    .badge-Rejected { background: #fee2e2; color: #991b1b; }

    .empty { text-align: center; color: #6b7280; padding: 2rem 0; }
    #message { margin-bottom: 1rem; padding: 0.6rem 1rem; border-radius: 8px; display: none; }
    #message.ok { background: #d1fae5; color: #065f46; display: block; }
    #message.err { background: #fee2e2; color: #991b1b; display: block; }

    dialog { border: none; border-radius: 12px; padding: 1.5rem; width: 420px; max-width: 90vw; }
    dialog::backdrop { background: rgba(0, 0, 0, 0.4); }
  </style>
</head>
<body>
  <div class="container">
    <h1>💡 Investment Ideas Tracker</h1>
    <div class="subtitle">Record and manage your investment research and opportunities</div>

    <div id="message"></div>

    <div class="card">
      <h2>Add New Investment Idea</h2>
      <label for="new-title">Investment Title</label>
      <input id="new-title" placeholder="e.g., Tesla Stock Analysis" maxlength="200" />
      <label for="new-description">Description</label>
      <textarea id="new-description" rows="3" maxlength="2000" placeholder="Detailed description of the investment opportunity..."></textarea>
      <label for="new-date">Idea Date</label>
      <input id="new-date" type="date" />
      <label for="new-status">Status</label>
      <select id="new-status"></select>
      <label for="new-notes">Additional Notes</label>
      <textarea id="new-notes" rows="4" maxlength="5000" placeholder="Research notes, analysis, thoughts..."></textarea>
      <button onclick="saveIdea()">Save Idea</button>
    </div>

    <div class="card">
      <h2>Your Investment Ideas</h2>
      <div class="toolbar">
        <select id="filter" onchange="loadIdeas()"></select>
        <span class="count" id="count"></span>
      </div>
      <div id="ideas"></div>
    </div>
  </div>

  <dialog id="edit-dialog">
    <h2 style="margin-bottom: 1rem;">Edit Investment Idea</h2>
    <input type="hidden" id="edit-id" />
    <label for="edit-title">Title</label>
    <input id="edit-title" maxlength="200" />
    <label for="edit-description">Description</label>
    <textarea id="edit-description" rows="3" maxlength="2000"></textarea>
    <label for="edit-date">Idea Date</label>
    <input id="edit-date" type="date" />
    <label for="edit-status">Status</label>
    <select id="edit-status"></select>
    <label for="edit-notes">Notes</label>
    <textarea id="edit-notes" rows="4" maxlength="5000"></textarea>
    <div style="display: flex; gap: 0.5rem; justify-content: flex-end; margin-top: 0.5rem;">
      <button class="secondary" onclick="closeEdit()">Cancel</button>
      <button onclick="saveChanges()">Save Changes</button>
    </div>
  </dialog>

  <script>
    const api = '/api/v1';
    let statuses = [];

    function notify(text, ok) {
      const el = document.getElementById('message');
      el.textContent = text;
      el.className = ok ? 'ok' : 'err';
      setTimeout(() => { el.className = ''; }, 4000);
    }

    function escapeHtml(s) {
      const div = document.createElement('div');
      div.textContent = s;
      return div.innerHTML;
    }

    async function loadStatuses() {
      const res = await fetch(api + '/statuses');
      const body = await res.json();
      statuses = body.data;

      const newSelect = document.getElementById('new-status');
      const editSelect = document.getElementById('edit-status');
      const filter = document.getElementById('filter');
      filter.innerHTML = '<option value="">All</option>';
      for (const s of statuses) {
        newSelect.add(new Option(s, s));
        editSelect.add(new Option(s, s));
        filter.add(new Option(s, s));
      }
    }

    async function loadIdeas() {
      const status = document.getElementById('filter').value;
      const url = status ? api + '/ideas?status=' + encodeURIComponent(status) : api + '/ideas';
      const res = await fetch(url);
      const body = await res.json();
      if (!res.ok) {
        notify(body.error || 'Failed to load ideas', false);
        return;
      }

      document.getElementById('count').textContent = 'Showing ' + body.count + ' ideas';
      const container = document.getElementById('ideas');
      if (body.count === 0) {
        container.innerHTML = '<div class="empty">No investment ideas found.<br/>Start by adding your first investment idea above.</div>';
        return;
      }

      container.innerHTML = body.data.map(idea => ` + "`" + `
        <div class="idea">
          <div class="idea-head">
            <span class="idea-title">${escapeHtml(idea.title)}</span>
            <span class="badge badge-${idea.status}">${idea.status}</span>
          </div>
          <div class="idea-date">Date: ${idea.idea_date}</div>
          ${idea.description ? '<div class="idea-desc">' + escapeHtml(idea.description) + '</div>' : ''}
          ${idea.notes ? '<div class="idea-notes">' + escapeHtml(idea.notes) + '</div>' : ''}
          <div class="idea-actions">
            <button class="secondary" onclick="openEdit(${idea.id})">Edit</button>
            <button class="danger" onclick="deleteIdea(${idea.id}, this)">Delete</button>
          </div>
        </div>` + "`" + `).join('');
    }

    async function saveIdea() {
      const title = document.getElementById('new-title').value.trim();
      if (!title) {
        notify('Please enter a title for the investment idea', false);
        return;
      }

      const payload = {
        title: title,
        description: document.getElementById('new-description').value,
        status: document.getElementById('new-status').value,
        notes: document.getElementById('new-notes').value,
      };
      const date = document.getElementById('new-date').value;
      if (date) payload.idea_date = date;

      const res = await fetch(api + '/ideas', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(payload),
      });
      const body = await res.json();
      if (!res.ok) {
        notify(body.error || 'Error saving investment idea', false);
        return;
      }

      notify('Investment idea saved successfully!', true);
      document.getElementById('new-title').value = '';
      document.getElementById('new-description').value = '';
      document.getElementById('new-date').value = '';
      document.getElementById('new-status').value = statuses[0];
      document.getElementById('new-notes').value = '';
      loadIdeas();
    }

    async function openEdit(id) {
      const res = await fetch(api + '/ideas/' + id);
      const body = await res.json();
      if (!res.ok) {
        notify(body.error || 'Investment idea not found', false);
        return;
      }

      const idea = body.data;
      document.getElementById('edit-id').value = idea.id;
      document.getElementById('edit-title').value = idea.title;
      document.getElementById('edit-description').value = idea.description;
      document.getElementById('edit-date').value = idea.idea_date;
      document.getElementById('edit-status').value = idea.status;
      document.getElementById('edit-notes').value = idea.notes;
      document.getElementById('edit-dialog').showModal();
    }

    function closeEdit() {
      document.getElementById('edit-dialog').close();
    }

    async function saveChanges() {
      const id = document.getElementById('edit-id').value;
      const title = document.getElementById('edit-title').value.trim();
      if (!title) {
        notify('Please enter a title', false);
        return;
      }

      const payload = {
        title: title,
        description: document.getElementById('edit-description').value,
        idea_date: document.getElementById('edit-date').value,
        status: document.getElementById('edit-status').value,
        notes: document.getElementById('edit-notes').value,
      };

      const res = await fetch(api + '/ideas/' + id, {
        method: 'PUT',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(payload),
      });
      const body = await res.json();
      if (!res.ok) {
        notify(body.error || 'Failed to update investment idea', false);
        return;
      }

      notify('Investment idea updated successfully!', true);
      closeEdit();
      loadIdeas();
    }

    async function deleteIdea(id) {
      if (!confirm('Are you sure you want to delete this idea? This action cannot be undone.')) return;

      const res = await fetch(api + '/ideas/' + id, { method: 'DELETE' });
      const body = await res.json();
      if (!res.ok) {
        notify(body.error || 'Failed to delete investment idea', false);
        return;
      }

      notify('Investment idea deleted', true);
      loadIdeas();
    }

    loadStatuses().then(loadIdeas);
  </script>
</body>
</html>`))
	})
}
