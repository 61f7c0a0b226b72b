package dashboard

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
  <style>
    body { font-family: sans-serif; margin: 2em; }
    table { border-collapse: collapse; margin: 1em 0; }
    td, th { border: 1px solid #ccc; padding: 0.2em 0.6em; text-align: right; }
    .error { color: #b00020; }
    .warning { color: #a06000; }
    .chart { width: 100%; max-width: 900px; height: 400px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p>{{.Description}}</p>
  <p id="status">Downloading COVID-19 data, please wait...</p>
  <label for="location">Select a location to analyse:</label>
  <select id="location" disabled></select>
  <button id="refresh">Refresh data</button>
  <div id="selection"></div>
  <script>
    const status = document.getElementById('status');
    const select = document.getElementById('location');
    const selection = document.getElementById('selection');

    function showError(el, body) {
      el.className = body.warning ? 'warning' : 'error';
      el.textContent = body.warning || body.error;
    }

    function renderTable(columns, rows) {
      const t = document.createElement('table');
      const head = t.insertRow();
      columns.forEach(c => { const th = document.createElement('th'); th.textContent = c; head.appendChild(th); });
      rows.forEach(r => {
        const tr = t.insertRow();
        r.forEach(v => { tr.insertCell().textContent = v === null ? '' : v; });
      });
      return t;
    }

    async function loadLocations(resp) {
      const body = await resp.json();
      if (!resp.ok) {
        showError(status, body);
        return;
      }
      status.className = '';
      status.textContent = 'Data downloaded successfully.';
      select.innerHTML = '';
      body.locations.forEach(l => select.add(new Option(l, l)));
      select.disabled = false;
      if (body.locations.length > 0) {
        showLocation(select.value);
      }
    }

    async function showLocation(location) {
      selection.innerHTML = '';
      const resp = await fetch('/api/locations/' + encodeURIComponent(location));
      const body = await resp.json();
      if (!resp.ok) {
        const p = document.createElement('p');
        showError(p, body);
        selection.appendChild(p);
        return;
      }
      const h = document.createElement('h2');
      h.textContent = 'COVID-19 data for ' + body.location;
      selection.appendChild(h);
      selection.appendChild(renderTable(body.preview.columns, body.preview.rows));

      body.series.forEach(s => {
        const div = document.createElement('div');
        div.className = 'chart';
        selection.appendChild(div);
        Plotly.newPlot(div, [{
          x: s.points ? s.points.map(p => p.date) : [],
          y: s.points ? s.points.map(p => p.value) : [],
          type: 'scatter',
          mode: 'lines'
        }], {
          title: s.title,
          xaxis: { title: 'Date' },
          yaxis: { title: s.label }
        });
      });

      const sh = document.createElement('h2');
      sh.textContent = 'Descriptive statistics for ' + body.location;
      selection.appendChild(sh);
      const labels = ['count', 'mean', 'std', 'min', '25%', '50%', '75%', 'max'];
      const rows = labels.map(l => [l].concat(body.stats.map(s => s[l])));
      selection.appendChild(renderTable([''].concat(body.stats.map(s => s.column)), rows));
    }

    select.addEventListener('change', () => showLocation(select.value));
    document.getElementById('refresh').addEventListener('click', async () => {
      status.textContent = 'Downloading COVID-19 data, please wait...';
      loadLocations(await fetch('/api/refresh', { method: 'POST' }));
    });

    fetch('/api/locations').then(loadLocations);
  </script>
</body>
</html>
`
