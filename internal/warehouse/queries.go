package warehouse

// Extraction queries against the analytics warehouse. Each query returns one
// source table of a forecast run; they are independent and safe to run
// concurrently.

const demandQuery = `
WITH ranked AS (
    SELECT
        CASE
            WHEN marketplace IN ('DE', 'Pan-EU') THEN 'EU'
            WHEN marketplace = 'GB' THEN 'UK'
            WHEN marketplace = 'North America' THEN 'US'
            ELSE marketplace
        END AS mp,
        razin,
        COALESCE(asin, '') AS asin,
        CAST(date AS DATE) AS date,
        SUM(future_sale) AS quantity
    FROM sale_plan_snapshot
    WHERE razin <> ''
      AND review_cycle_version = 'Validated_plan'
      AND snapshot_date = (
          SELECT MAX(snapshot_date)
          FROM sale_plan_snapshot
          WHERE review_cycle_version = 'Validated_plan'
      )
      AND CAST(date AS DATE) BETWEEN date_trunc('month', CURRENT_DATE) - interval '2 months'
                                 AND date_trunc('year', CURRENT_DATE + interval '1 year') + interval '1 year' - interval '1 day'
    GROUP BY mp, razin, asin, date
)
SELECT mp, razin, asin, date, quantity
FROM ranked
ORDER BY razin, mp`

const inventoryQuery = `
SELECT
    marketplace,
    COALESCE(asin, '') AS asin,
    COALESCE(total_inventory, 0) AS total_inventory,
    COALESCE(in_walmart, 0) AS in_walmart,
    COALESCE(in_to_osc_l3m, 0) AS in_to_osc_l3m,
    COALESCE(in_fm, 0) AS in_fm,
    COALESCE(units_in_d2amz, 0) AS units_in_d2amz
FROM inventory_snapshot
WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM inventory_snapshot)`

const openPOQuery = `
SELECT
    document_number AS po_number,
    line_id,
    item AS razin,
    asin,
    CASE
        WHEN mp IN ('DE', 'Pan-EU') THEN 'EU'
        WHEN mp = 'GB' THEN 'UK'
        ELSE mp
    END AS mp,
    COALESCE(vendor_name, '') AS vendor_name,
    COALESCE(current_status, '') AS current_status,
    COALESCE(wh_type, '3PL') AS wh_type,
    crd,
    COALESCE(leftover_quantity, 0) AS leftover_quantity
FROM open_po_lines
WHERE leftover_quantity > 0`

const inboundQuery = `
SELECT
    razin,
    asin,
    CASE
        WHEN mkt_place IN ('DE', 'Pan-EU') THEN 'EU'
        WHEN mkt_place = 'GB' THEN 'UK'
        ELSE mkt_place
    END AS mkt_place,
    COALESCE(vendor_name, '') AS vendor_name,
    COALESCE(quantity, 0) AS quantity,
    expected_delivery_date,
    actual_arrival_date,
    movement_date,
    final_crd
FROM inbound_shipments
WHERE quantity > 0`

const priceQuery = `
WITH latest AS (
    SELECT
        asin,
        CASE WHEN market_reporting = 'Pan-EU' THEN 'EU' ELSE market_reporting END AS mp,
        asp_benchmark,
        gross_asp_l30,
        ROW_NUMBER() OVER (PARTITION BY asin, market_reporting ORDER BY date DESC) AS rn
    FROM price_benchmarks
)
SELECT
    asin || mp AS ref,
    CASE
        WHEN asp_benchmark IS NULL OR asp_benchmark = 0 THEN COALESCE(gross_asp_l30, 0)
        ELSE asp_benchmark
    END AS final_sales_price
FROM latest
WHERE rn = 1`

const masterQuery = `
WITH ranked AS (
    SELECT
        name AS razin,
        asin_number AS asin,
        lead_time_production_days,
        parcels_per_master_carton AS units_per_carton,
        preferred_vendor,
        DENSE_RANK() OVER (PARTITION BY name ORDER BY snapshot_date DESC) AS rnk
    FROM item_master_data
    WHERE COALESCE(successor_razin, '') = ''
)
SELECT razin, asin, lead_time_production_days, units_per_carton, preferred_vendor
FROM ranked
WHERE rnk = 1`

const vendorQuery = `
WITH ranked AS (
    SELECT
        vendor_id,
        vendor_name,
        country AS shipping_country,
        ROW_NUMBER() OVER (PARTITION BY vendor_id ORDER BY snapshot_date DESC) AS rn
    FROM vendor_master_data
    WHERE supplier_category IN ('Manufacturers', 'Manufacturers / LP')
)
SELECT vendor_id, vendor_name, shipping_country
FROM ranked
WHERE rn = 1`

const pipelineQuery = `
SELECT
    ref,
    COALESCE(ready_to_ship, 0) AS ready_to_ship,
    COALESCE(at_destination, 0) AS at_destination,
    COALESCE(in_transit_short, 0) AS in_transit_short,
    COALESCE(local_market, 0) AS local_market,
    COALESCE(in_transit_35_98, 0) AS in_transit_35_98,
    COALESCE(manufacturing_28_126, 0) AS manufacturing_28_126,
    COALESCE(manufacturing_56_168, 0) AS manufacturing_56_168
FROM pipeline_positions
WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM pipeline_positions)`
