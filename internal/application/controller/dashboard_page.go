package controller

import (
	"html/template"
	"strings"
)

type capitalOptionView struct {
	Name  string
	State string
}

type dashboardPageView struct {
	Title       string
	BasePath    string
	Capitals    []capitalOptionView
	States      []string
	Conditions  []string
	Bands       []string
	GeneratedAt string
}

var dashboardPageTemplate = template.Must(template.New("dashboard").Parse(dashboardPageHTML))

func renderDashboardPage(view dashboardPageView) (string, error) {
	var builder strings.Builder
	if err := dashboardPageTemplate.Execute(&builder, view); err != nil {
		return "", err
	}
	return builder.String(), nil
}

const dashboardPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
  <style>
    :root {
      --bg: #ffffff;
      --text: #1f1f1f;
      --muted: #6f6f6f;
      --line: #f0f0f0;
      --header: #f7f7f7;
      --accent: #1c6ea0;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      background: var(--bg);
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: var(--text);
    }
    .container { max-width: 1200px; margin: 0 auto; padding: 24px 32px 48px 32px; }
    .title { font-size: 28px; font-weight: 600; margin-bottom: 4px; }
    .subtitle { font-size: 14px; color: var(--muted); margin-bottom: 24px; }
    .filters {
      display: flex; gap: 16px; flex-wrap: wrap; align-items: flex-end;
      background: var(--header); border: 1px solid var(--line);
      border-radius: 6px; padding: 16px; margin-bottom: 24px;
    }
    .filters label { display: block; font-size: 12px; color: var(--muted); margin-bottom: 4px; }
    .filters select, .filters input { min-width: 160px; padding: 6px; border: 1px solid var(--line); border-radius: 4px; }
    .filters select[multiple] { min-height: 96px; }
    .filters button {
      padding: 8px 18px; border: none; border-radius: 4px;
      background: var(--accent); color: #ffffff; cursor: pointer;
    }
    .metrics { display: flex; gap: 16px; margin-bottom: 24px; flex-wrap: wrap; }
    .metric {
      flex: 1; min-width: 180px; border: 1px solid var(--line);
      border-radius: 6px; padding: 16px; text-align: center;
    }
    .metric .value { font-size: 26px; font-weight: 600; }
    .metric .label { font-size: 13px; color: var(--muted); }
    .chart { margin-bottom: 32px; }
    .table { width: 100%; border-collapse: collapse; font-size: 14px; }
    .table thead th {
      background: var(--header); color: var(--muted); font-weight: 500;
      padding: 10px 8px; text-align: left; border-bottom: 1px solid var(--line);
    }
    .table tbody td { padding: 9px 8px; border-bottom: 1px solid var(--line); }
    .table tbody tr:nth-child(even) td { background: #fbfbfb; }
    .pager { margin-top: 12px; display: flex; gap: 8px; align-items: center; font-size: 14px; }
    .pager button { padding: 6px 12px; border: 1px solid var(--line); background: #ffffff; border-radius: 4px; cursor: pointer; }
    .toolbar { margin: 16px 0; display: flex; justify-content: flex-end; }
    .toolbar a { color: var(--accent); font-size: 14px; text-decoration: none; }
    .footer { margin-top: 32px; font-size: 12px; color: var(--muted); }
    .badge {
      display: inline-block; margin-left: 12px; padding: 3px 10px;
      border-radius: 12px; font-size: 12px; background: var(--header);
      border: 1px solid var(--line); color: var(--muted);
    }
    .chart-error { padding: 24px; font-size: 14px; color: var(--muted); text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="title">{{.Title}}<span id="pipeline-badge" class="badge">pipeline: checking...</span></div>
    <div class="subtitle">Precomputed weather for Brazilian state capitals</div>

    <div class="filters">
      <div>
        <label for="capital">Capital</label>
        <select id="capital" multiple>
          {{range .Capitals}}<option value="{{.Name}}">{{.Name}} ({{.State}})</option>
          {{end}}</select>
      </div>
      <div>
        <label for="state">State</label>
        <select id="state" multiple>
          {{range .States}}<option value="{{.}}">{{.}}</option>
          {{end}}</select>
      </div>
      <div>
        <label for="condition">Condition</label>
        <select id="condition" multiple>
          {{range .Conditions}}<option value="{{.}}">{{.}}</option>
          {{end}}</select>
      </div>
      <div>
        <label for="band">Temperature band (&deg;C)</label>
        <select id="band" multiple>
          {{range .Bands}}<option value="{{.}}">{{.}}</option>
          {{end}}</select>
      </div>
      <div>
        <label for="fromDate">From</label>
        <input type="date" id="fromDate" />
      </div>
      <div>
        <label for="toDate">To</label>
        <input type="date" id="toDate" />
      </div>
      <div>
        <button id="apply">Apply filters</button>
      </div>
    </div>

    <div class="metrics">
      <div class="metric"><div class="value" id="metric-capitals">-</div><div class="label">Capitals</div></div>
      <div class="metric"><div class="value" id="metric-records">-</div><div class="label">Records</div></div>
      <div class="metric"><div class="value" id="metric-avg">-</div><div class="label">Avg temperature (&deg;C)</div></div>
    </div>

    <div id="chart-by-capital" class="chart"></div>
    <div id="chart-over-time" class="chart"></div>

    <div class="toolbar"><a id="export" href="#">Download CSV</a></div>

    <table class="table">
      <thead>
        <tr>
          <th>Date</th><th>Capital</th><th>State</th><th>Condition</th>
          <th>Min</th><th>Avg</th><th>Max</th><th>Humidity</th><th>Precip.</th>
        </tr>
      </thead>
      <tbody id="observation-rows"></tbody>
    </table>
    <div class="pager">
      <button id="prev">Previous</button>
      <span id="page-info"></span>
      <button id="next">Next</button>
    </div>

    <div class="footer">Rendered at {{.GeneratedAt}}. Data is loaded by an external pipeline; this dashboard is read-only.</div>
  </div>

  <script>
    var basePath = "{{.BasePath}}";
    var page = 0;
    var totalPages = 0;

    function selectedValues(id) {
      var select = document.getElementById(id);
      return Array.prototype.slice.call(select.selectedOptions).map(function (o) { return o.value; });
    }

    function filterQuery() {
      var params = new URLSearchParams();
      selectedValues("capital").forEach(function (v) { params.append("capital", v); });
      selectedValues("state").forEach(function (v) { params.append("state", v); });
      selectedValues("condition").forEach(function (v) { params.append("condition", v); });
      selectedValues("band").forEach(function (v) { params.append("band", v); });
      var from = document.getElementById("fromDate").value;
      var to = document.getElementById("toDate").value;
      if (from) { params.append("from", from); }
      if (to) { params.append("to", to); }
      return params;
    }

    function fetchJSON(path, params) {
      var query = params.toString();
      return fetch(basePath + path + (query ? "?" + query : "")).then(function (resp) {
        if (!resp.ok) { throw new Error("request failed: " + resp.status); }
        return resp.json();
      });
    }

    function chartError(id, message) {
      document.getElementById(id).innerHTML =
        '<div class="chart-error">' + message + '</div>';
    }

    function renderSummary() {
      fetchJSON("/summary", filterQuery()).then(function (summary) {
        document.getElementById("metric-capitals").textContent = summary.capitals;
        document.getElementById("metric-records").textContent = summary.records;
        document.getElementById("metric-avg").textContent =
          summary.avgTemp == null ? "-" : summary.avgTemp.toFixed(1);
      }).catch(function () {
        ["metric-capitals", "metric-records", "metric-avg"].forEach(function (id) {
          document.getElementById(id).textContent = "unavailable";
        });
      });
    }

    function renderPipelineBadge() {
      fetchJSON("/pipeline/status", new URLSearchParams()).then(function (status) {
        var badge = document.getElementById("pipeline-badge");
        if (status.lastRun == null) {
          badge.textContent = "pipeline: no load recorded";
          return;
        }
        var text = "pipeline: " + status.lastRun.status +
          " (run " + status.lastRun.runId + ")";
        if (status.queueKnown) {
          text += ", " + status.queueDepth + " queued";
        }
        badge.textContent = text;
      }).catch(function () {
        document.getElementById("pipeline-badge").textContent = "pipeline: status unavailable";
      });
    }

    function renderByCapital() {
      fetchJSON("/series/temperature-by-capital", filterQuery()).then(function (series) {
        Plotly.newPlot("chart-by-capital", [{
          type: "bar",
          x: series.map(function (p) { return p.capital; }),
          y: series.map(function (p) { return p.avgTemp; }),
          marker: { color: "#1c6ea0" }
        }], {
          title: "Average temperature by capital",
          yaxis: { title: "Temperature (°C)" }
        }, { responsive: true });
      }).catch(function () {
        chartError("chart-by-capital", "Temperature by capital is unavailable.");
      });
    }

    function renderOverTime() {
      fetchJSON("/series/temperature-over-time", filterQuery()).then(function (series) {
        Plotly.newPlot("chart-over-time", [{
          type: "scatter",
          mode: "lines+markers",
          x: series.map(function (p) { return p.date; }),
          y: series.map(function (p) { return p.avgTemp; }),
          line: { color: "#1c6ea0" }
        }], {
          title: "Average temperature over time",
          yaxis: { title: "Temperature (°C)" }
        }, { responsive: true });
      }).catch(function () {
        chartError("chart-over-time", "Temperature over time is unavailable.");
      });
    }

    function cell(value) {
      return "<td>" + (value == null ? "-" : value) + "</td>";
    }

    function renderObservations() {
      var params = filterQuery();
      params.append("page", page);
      fetchJSON("/observations", params).then(function (result) {
        totalPages = result.totalPages;
        var rows = result.content.map(function (o) {
          return "<tr>" + cell(o.date) + cell(o.capital) + cell(o.state) + cell(o.condition) +
            cell(o.tempMin) + cell(o.tempAvg) + cell(o.tempMax) + cell(o.humidity) + cell(o.precipitation) + "</tr>";
        });
        document.getElementById("observation-rows").innerHTML = rows.join("");
        document.getElementById("page-info").textContent =
          "Page " + (result.number + 1) + " of " + Math.max(totalPages, 1) +
          " (" + result.totalElements + " records)";
      }).catch(function () {
        document.getElementById("observation-rows").innerHTML =
          '<tr><td colspan="9" class="chart-error">Observations are unavailable.</td></tr>';
        document.getElementById("page-info").textContent = "";
      });
    }

    function refresh() {
      var query = filterQuery().toString();
      document.getElementById("export").href =
        basePath + "/observations/export" + (query ? "?" + query : "");
      renderSummary();
      renderByCapital();
      renderOverTime();
      renderObservations();
      renderPipelineBadge();
    }

    document.getElementById("apply").addEventListener("click", function () { page = 0; refresh(); });
    document.getElementById("prev").addEventListener("click", function () {
      if (page > 0) { page--; renderObservations(); }
    });
    document.getElementById("next").addEventListener("click", function () {
      if (page + 1 < totalPages) { page++; renderObservations(); }
    });

    refresh();
  </script>
</body>
</html>`
