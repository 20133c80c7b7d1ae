package web

// Login page: password form posting to /api/auth. The error banner
// auto-dismisses after three seconds.
const tmplLogin = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Location Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f9fafb;display:flex;align-items:center;justify-content:center;min-height:100vh}
.card{background:#fff;border-radius:12px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:32px;width:100%;max-width:360px}
h2{font-size:20px;font-weight:500;text-align:center;color:#111827}
.sub{margin-top:8px;text-align:center;font-size:13px;color:#6b7280}
form{margin-top:24px}
input{width:100%;border:1px solid #d1d5db;border-radius:8px;padding:8px 12px;font-size:14px}
input:focus{outline:2px solid #3b82f6;border-color:transparent}
button{margin-top:16px;width:100%;background:#2563eb;color:#fff;border:0;border-radius:8px;padding:9px;font-size:14px;font-weight:500;cursor:pointer}
button:hover{background:#1d4ed8}
.error{margin-top:12px;color:#ef4444;font-size:13px;text-align:center;min-height:18px}
</style>
</head>
<body>
<div class="card">
  <h2>Location Dashboard</h2>
  <p class="sub">Enter password to continue</p>
  <form id="login-form">
    <input id="password" name="password" type="password" placeholder="Password" autocomplete="current-password" required>
    <div class="error" id="error"></div>
    <button type="submit">Login</button>
  </form>
</div>
<script>
const form = document.getElementById('login-form');
const errorEl = document.getElementById('error');
let dismissTimer = null;

function showError(message) {
  errorEl.textContent = message;
  clearTimeout(dismissTimer);
  dismissTimer = setTimeout(() => { errorEl.textContent = ''; }, 3000);
}

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const password = document.getElementById('password').value;
  try {
    const res = await fetch('/api/auth', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({password}),
    });
    const body = await res.json();
    if (body.success) {
      window.location.href = '/';
    } else {
      showError(body.message || 'Invalid password');
    }
  } catch (err) {
    showError('Server error');
  }
});
</script>
</body>
</html>
`

// Dashboard page: creates a view, loads the user directory, and keeps the
// Mapbox surface in sync with the polled map document.
const tmplDashboard = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Location Traces Dashboard</title>
<link href="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.css" rel="stylesheet">
<script src="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.js"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f9fafb;color:#111827}
.wrap{max-width:80rem;margin:0 auto;padding:32px 24px}
header h1{font-size:28px;font-weight:700}
header p{margin-top:8px;font-size:13px;color:#6b7280}
.panel{margin-top:24px;background:#fff;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:24px}
.controls{display:flex;align-items:center;gap:12px;flex-wrap:wrap;margin-bottom:16px}
select{border:1px solid #d1d5db;border-radius:8px;padding:7px 10px;font-size:14px;background:#fff}
.toggle{font-size:13px;color:#6b7280;cursor:pointer;user-select:none}
.toggle b{color:#111827}
.meta{display:flex;justify-content:space-between;align-items:center;margin-bottom:12px;font-size:14px}
.meta .count{color:#6b7280;font-size:13px}
.banner{display:none;margin-bottom:12px;padding:12px;border-radius:8px;background:#fef2f2;color:#b91c1c;font-size:13px}
#map{width:100%;height:70vh;border-radius:12px}
.placeholder{width:100%;height:70vh;border-radius:12px;background:#f3f4f6;display:flex;align-items:center;justify-content:center;color:#6b7280;font-size:14px}
.logout{float:right;font-size:13px;color:#2563eb;cursor:pointer;background:none;border:0}
</style>
</head>
<body>
<div class="wrap">
  <header>
    <button class="logout" id="logout">Log out</button>
    <h1>Location Traces Dashboard</h1>
    <p>View location traces for users by selecting a username, or aggregate traces by demographic filters</p>
  </header>
  <div class="panel">
    <div class="controls">
      <span class="toggle" id="mode-toggle">Mode: <b id="mode-label">user</b> (click to switch)</span>
      <span id="user-controls">
        <select id="user-select"><option value="">Select user</option></select>
      </span>
      <span id="filter-controls" style="display:none">
        <select id="age-select">
          <option value="">Any Age Range</option>
          <option>18-24</option><option>25-34</option><option>35-44</option>
          <option>45-54</option><option>55+</option>
        </select>
        <select id="gender-select">
          <option value="">Any Gender</option>
          <option>Male</option><option>Female</option><option>Other</option>
        </select>
        <select id="commute-select">
          <option value="">Any Commute Mode</option>
          <option>Car</option><option>Public Transport</option><option>Bike</option>
          <option>Walk</option><option>Other</option>
        </select>
      </span>
    </div>
    <div class="banner" id="banner"></div>
    <div class="meta">
      <span id="trace-title"></span>
      <span class="count" id="trace-count"></span>
    </div>
    <div id="status" class="placeholder">Select a user to view their location traces</div>
    <div id="map" style="display:none"></div>
  </div>
</div>
<script>
mapboxgl.accessToken = '{{.MapboxToken}}';

let viewID = null;
let map = null;
let markers = [];
let mode = 'user';
let pollTimer = null;

async function api(method, path, body) {
  const res = await fetch(path, {
    method,
    headers: body ? {'Content-Type': 'application/json'} : {},
    body: body ? JSON.stringify(body) : undefined,
  });
  if (res.status === 401) { window.location.href = '/login'; throw new Error('unauthenticated'); }
  return res.json();
}

function setStatus(text) {
  const el = document.getElementById('status');
  el.style.display = text ? 'flex' : 'none';
  el.textContent = text || '';
  document.getElementById('map').style.display = text ? 'none' : 'block';
  if (!text && map) map.resize();
}

function applyDocument(doc) {
  markers.forEach(m => m.remove());
  markers = [];
  if (map.getLayer('route-line')) map.removeLayer('route-line');
  if (map.getSource('route')) map.removeSource('route');

  for (const [id, src] of Object.entries(doc.sources || {})) {
    map.addSource(id, src);
  }
  for (const layer of doc.layers || []) {
    map.addLayer(layer);
  }
  for (const mk of doc.markers || []) {
    const el = document.createElement('div');
    el.style.cssText = 'width:8px;height:8px;border-radius:50%;background:#3b82f6;border:2px solid #fff';
    const popup = new mapboxgl.Popup({offset: 5, closeButton: false})
      .setHTML('<div style="font-family:system-ui,sans-serif;padding:8px;font-size:12px"><p>' +
        mk.time + '</p><p>' + mk.speed + '</p></div>');
    markers.push(new mapboxgl.Marker(el).setLngLat([mk.longitude, mk.latitude]).setPopup(popup).addTo(map));
  }
  if (doc.viewport && doc.markers && doc.markers.length > 0) {
    const b = doc.viewport.bounds;
    map.fitBounds([[b.west, b.south], [b.east, b.north]], {padding: doc.viewport.padding});
  }
}

function renderSnapshot(snap) {
  const banner = document.getElementById('banner');
  banner.style.display = snap.state === 'error' ? 'block' : 'none';
  banner.textContent = snap.error || '';

  document.getElementById('trace-title').textContent =
    snap.state === 'ready' && snap.display_name ? 'Location Trace for ' + snap.display_name : '';
  document.getElementById('trace-count').textContent =
    snap.state === 'ready' ? snap.point_count + ' data points' +
      (snap.updated ? ' · updated ' + snap.updated : '') : '';

  if (snap.state === 'loading') { setStatus('Loading location data...'); return; }
  if (snap.state === 'no-selection') {
    setStatus(mode === 'user' ? 'Select a user to view their location traces' : 'Choose at least one filter');
    applyDocument(snap.map);
    return;
  }
  if (snap.state === 'no-data') { setStatus('No location data found for this selection'); applyDocument(snap.map); return; }
  if (snap.state === 'error') { setStatus(''); applyDocument(snap.map); return; }
  setStatus('');
  applyDocument(snap.map);
}

async function poll() {
  clearTimeout(pollTimer);
  const snap = await api('GET', '/api/views/' + viewID);
  renderSnapshot(snap);
  if (snap.state === 'loading') pollTimer = setTimeout(poll, 250);
}

async function applySelection() {
  const body = {mode};
  if (mode === 'user') {
    body.user_id = document.getElementById('user-select').value;
  } else {
    body.criteria = {
      age_range: document.getElementById('age-select').value,
      gender: document.getElementById('gender-select').value,
      commute_mode: document.getElementById('commute-select').value,
    };
  }
  const snap = await api('POST', '/api/views/' + viewID + '/selection', body);
  renderSnapshot(snap);
  if (snap.state === 'loading') pollTimer = setTimeout(poll, 250);
}

async function init() {
  const created = await api('POST', '/api/views');
  viewID = created.view_id;

  const users = await api('GET', '/api/users');
  const select = document.getElementById('user-select');
  for (const u of users) {
    const opt = document.createElement('option');
    opt.value = u.value;
    opt.textContent = u.label;
    select.appendChild(opt);
  }

  map = new mapboxgl.Map({
    container: 'map',
    style: 'mapbox://styles/mapbox/light-v11',
    center: [-74.5, 40],
    zoom: 2,
    attributionControl: false,
  });
  map.addControl(new mapboxgl.AttributionControl({compact: true}));
  map.on('load', async () => {
    const snap = await api('POST', '/api/views/' + viewID + '/ready');
    renderSnapshot(snap);
  });

  select.addEventListener('change', applySelection);
  for (const id of ['age-select', 'gender-select', 'commute-select']) {
    document.getElementById(id).addEventListener('change', applySelection);
  }
  document.getElementById('mode-toggle').addEventListener('click', async () => {
    mode = mode === 'user' ? 'filter' : 'user';
    document.getElementById('mode-label').textContent = mode;
    document.getElementById('user-controls').style.display = mode === 'user' ? '' : 'none';
    document.getElementById('filter-controls').style.display = mode === 'filter' ? '' : 'none';
    const snap = await api('POST', '/api/views/' + viewID + '/mode', {mode});
    renderSnapshot(snap);
  });
  document.getElementById('logout').addEventListener('click', async () => {
    await api('DELETE', '/api/auth');
    window.location.href = '/login';
  });
}

init();
</script>
</body>
</html>
`
